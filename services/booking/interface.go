package booking

import (
	"time"

	bookingRepo "freshlaundry/database/repository/booking"
	subscriptionRepo "freshlaundry/database/repository/subscription"
	timeslotRepo "freshlaundry/database/repository/timeslot"
	userRepo "freshlaundry/database/repository/user"
	"freshlaundry/models"
	"freshlaundry/services/notification"
	"freshlaundry/services/tasks"
)

// UpdateRequest is a wizard step transition: choosing a date, choosing a
// slot, or stepping back.
type UpdateRequest struct {
	Action     string `json:"action" binding:"required"` // "date", "slot" or "back"
	PickupDate string `json:"pickupDate,omitempty"`      // "YYYY-MM-DD"
	TimeSlotID string `json:"timeSlotId,omitempty"`
}

// ConfirmRequest carries the final confirmation step's fields.
type ConfirmRequest struct {
	Address      string `json:"address"`
	Instructions string `json:"instructions,omitempty"`
}

// WizardService manages the stateful 3-step pickup booking wizard.
type WizardService interface {
	StartSession(userID string) (*models.BookingWizardSession, error)
	UpdateSession(sessionID, userID string, req UpdateRequest) (*models.BookingWizardSession, error)
	ConfirmBooking(sessionID, userID string, req ConfirmRequest) (*models.Booking, error)
	CancelSession(sessionID, userID string) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Bookings      bookingRepo.BookingRepository
	Slots         timeslotRepo.TimeSlotRepository
	Subscriptions subscriptionRepo.SubscriptionRepository
	Users         userRepo.UserRepository
	Sessions      SessionStore
	Notifier      notification.NotificationService
	Reminders     tasks.ReminderScheduler

	// Now is the wizard's clock; tests override it. Nil means time.Now.
	Now func() time.Time
}
