package admin

import (
	bookingRepo "freshlaundry/database/repository/booking"
	contactRepo "freshlaundry/database/repository/contact"
	notificationRepo "freshlaundry/database/repository/notification"
	subscriptionRepo "freshlaundry/database/repository/subscription"
	userRepo "freshlaundry/database/repository/user"
	"freshlaundry/models"
)

// Stats are the summary tiles at the top of the admin dashboard.
type Stats struct {
	TotalUsers          int64 `json:"totalUsers"`
	ActiveSubscriptions int64 `json:"activeSubscriptions"`
	PendingBookings     int64 `json:"pendingBookings"`
	UnreadMessages      int64 `json:"unreadMessages"`
}

// Service is the admin back-office.
type Service interface {
	GetStats() (*Stats, error)
	ListBookings() ([]models.AdminBooking, error)
	ListContacts() ([]models.ContactSubmission, error)
	ListNotifications() ([]models.Notification, error)
	UpdateBookingStatus(id, status string) (*models.Booking, error)
	MarkContactRead(id string) error
	MarkNotificationRead(id string) error
}

// DefaultService implements Service.
type DefaultService struct {
	Users         userRepo.UserRepository
	Subs          subscriptionRepo.SubscriptionRepository
	Bookings      bookingRepo.BookingRepository
	Contacts      contactRepo.ContactRepository
	Notifications notificationRepo.NotificationRepository
}
