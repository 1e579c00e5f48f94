package admin

import (
	"fmt"

	"freshlaundry/models"
)

// adminListLimit caps every admin list view.
const adminListLimit = 50

// GetStats runs the four summary counts.
func (s *DefaultService) GetStats() (*Stats, error) {
	users, err := s.Users.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	subs, err := s.Subs.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	pending, err := s.Bookings.CountByStatus(models.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending bookings: %w", err)
	}
	unread, err := s.Contacts.CountUnread()
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return &Stats{
		TotalUsers:          users,
		ActiveSubscriptions: subs,
		PendingBookings:     pending,
		UnreadMessages:      unread,
	}, nil
}

// ListBookings returns the newest bookings with customer and slot names
// joined in a single query.
func (s *DefaultService) ListBookings() ([]models.AdminBooking, error) {
	return s.Bookings.ListRecent(adminListLimit)
}

// ListContacts returns the newest contact submissions.
func (s *DefaultService) ListContacts() ([]models.ContactSubmission, error) {
	return s.Contacts.ListRecent(adminListLimit)
}

// ListNotifications returns the newest notifications.
func (s *DefaultService) ListNotifications() ([]models.Notification, error) {
	return s.Notifications.ListRecent(adminListLimit)
}

// UpdateBookingStatus moves a booking to the given status. Any status may
// follow any other; only unknown values are rejected.
func (s *DefaultService) UpdateBookingStatus(id, status string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, fmt.Errorf("invalid booking status %q", status)
	}
	return s.Bookings.UpdateStatus(id, status)
}

// MarkContactRead flags a contact submission as read. Idempotent.
func (s *DefaultService) MarkContactRead(id string) error {
	return s.Contacts.MarkRead(id)
}

// MarkNotificationRead flags a notification as read. Idempotent.
func (s *DefaultService) MarkNotificationRead(id string) error {
	return s.Notifications.MarkRead(id)
}
