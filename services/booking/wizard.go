package booking

import (
	"fmt"
	"strings"
	"time"

	"freshlaundry/models"
	"freshlaundry/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Wizard actions accepted by UpdateSession.
const (
	ActionDate = "date"
	ActionSlot = "slot"
	ActionBack = "back"
)

const pickupDateLayout = "2006-01-02"

func (s *DefaultWizardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// StartSession opens a new wizard session for the user. Without an active
// subscription it returns ErrNoSubscription and no session is created.
func (s *DefaultWizardService) StartSession(userID string) (*models.BookingWizardSession, error) {
	sub, err := s.Subscriptions.GetActiveByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if sub == nil {
		return nil, ErrNoSubscription
	}

	slots, err := s.Slots.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load time slots: %w", err)
	}

	session := &models.BookingWizardSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Step:      models.WizardStepDate,
		TimeSlots: slots,
		CreatedAt: s.now(),
	}

	// Pre-fill the address from the profile. A failed lookup degrades to
	// an empty address rather than aborting the wizard.
	if usr, err := s.Users.GetByID(userID); err != nil {
		utils.GetLogger().Warn("wizard: failed to load profile for address pre-fill",
			zap.String("userID", userID), zap.Error(err))
	} else if usr != nil {
		session.Address = usr.Address
	}

	if err := s.Sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession applies a step transition. Validation failures leave the
// stored session untouched.
func (s *DefaultWizardService) UpdateSession(sessionID, userID string, req UpdateRequest) (*models.BookingWizardSession, error) {
	session, err := s.loadSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	switch req.Action {
	case ActionDate:
		if req.PickupDate == "" {
			return nil, ErrMissingDate
		}
		date, err := time.Parse(pickupDateLayout, req.PickupDate)
		if err != nil {
			return nil, fmt.Errorf("invalid pickup date %q: %w", req.PickupDate, err)
		}
		today := s.now().Truncate(24 * time.Hour)
		if date.Before(today) {
			return nil, ErrPastDate
		}
		session.PickupDate = req.PickupDate
		session.Step = models.WizardStepSlot

	case ActionSlot:
		if session.PickupDate == "" {
			return nil, ErrMissingDate
		}
		if req.TimeSlotID == "" {
			return nil, ErrMissingSlot
		}
		if !hasSlot(session.TimeSlots, req.TimeSlotID) {
			return nil, ErrUnknownSlot
		}
		session.TimeSlotID = req.TimeSlotID
		session.Step = models.WizardStepConfirm

	case ActionBack:
		if session.Step > models.WizardStepDate {
			session.Step--
		}

	default:
		return nil, ErrUnknownAction
	}

	if err := s.Sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking validates the final step and writes exactly one pending
// booking. On success the session is consumed, so a repeated confirm on
// the same session fails with ErrSessionNotFound instead of inserting a
// second row. On failure the session (and its step) is left unchanged.
func (s *DefaultWizardService) ConfirmBooking(sessionID, userID string, req ConfirmRequest) (*models.Booking, error) {
	session, err := s.loadSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	if session.PickupDate == "" {
		return nil, ErrMissingDate
	}
	if session.TimeSlotID == "" {
		return nil, ErrMissingSlot
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, ErrMissingAddress
	}

	b := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     session.UserID,
		PickupDate: session.PickupDate,
		TimeSlotID: session.TimeSlotID,
		Address:    address,
		Status:     models.BookingStatusPending,
	}
	if instructions := strings.TrimSpace(req.Instructions); instructions != "" {
		b.SpecialInstructions = &instructions
	}

	if err := s.Bookings.Create(b); err != nil {
		return nil, err
	}

	if err := s.Sessions.Delete(sessionID); err != nil {
		utils.GetLogger().Warn("wizard: failed to consume session after booking",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.fanOut(b, session)

	return b, nil
}

// CancelSession discards the wizard session.
func (s *DefaultWizardService) CancelSession(sessionID, userID string) error {
	session, err := s.loadSession(sessionID, userID)
	if err != nil {
		return err
	}
	return s.Sessions.Delete(session.SessionID)
}

// loadSession fetches the session and verifies ownership. A foreign
// session is indistinguishable from a missing one to the caller.
func (s *DefaultWizardService) loadSession(sessionID, userID string) (*models.BookingWizardSession, error) {
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// fanOut records the admin notification and schedules the pickup-morning
// reminder. Both are best-effort: the booking is already persisted.
func (s *DefaultWizardService) fanOut(b *models.Booking, session *models.BookingWizardSession) {
	logger := utils.GetLogger()

	customerName := ""
	if usr, err := s.Users.GetByID(b.UserID); err != nil {
		logger.Warn("wizard: failed to load customer name", zap.String("userID", b.UserID), zap.Error(err))
	} else if usr != nil {
		customerName = usr.FullName
	}

	slotName := ""
	for _, slot := range session.TimeSlots {
		if slot.ID == b.TimeSlotID {
			slotName = slot.SlotName
			break
		}
	}

	if s.Notifier != nil {
		if err := s.Notifier.NotifyBookingCreated(customerName, b.PickupDate, slotName); err != nil {
			logger.Warn("wizard: failed to notify booking", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	if s.Reminders != nil {
		date, err := time.ParseInLocation(pickupDateLayout, b.PickupDate, time.Local)
		if err != nil {
			logger.Warn("wizard: unparseable pickup date for reminder", zap.String("date", b.PickupDate))
			return
		}
		payload := models.ReminderPayload{
			BookingID:    b.ID,
			CustomerName: customerName,
			PickupDate:   b.PickupDate,
			SlotName:     slotName,
		}
		fireAt := date.Add(7 * time.Hour) // 07:00 local on the pickup morning
		if err := s.Reminders.SchedulePickupReminder(payload, fireAt); err != nil {
			logger.Warn("wizard: failed to schedule reminder", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
}

func hasSlot(slots []models.TimeSlot, id string) bool {
	for _, slot := range slots {
		if slot.ID == id {
			return true
		}
	}
	return false
}
