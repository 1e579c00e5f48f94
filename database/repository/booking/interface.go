package bookingRepo

import "freshlaundry/models"

// BookingRepository defines persistence operations for pickup bookings.
type BookingRepository interface {
	Create(b *models.Booking) error
	ListByUser(userID string, limit int64) ([]models.BookingWithSlot, error)
	CountByUser(userID string) (int64, error)
	ListRecent(limit int64) ([]models.AdminBooking, error)
	UpdateStatus(id, status string) (*models.Booking, error)
	CountByStatus(status string) (int64, error)
}
