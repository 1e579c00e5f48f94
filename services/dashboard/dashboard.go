package dashboard

import (
	"fmt"
	"time"

	bookingRepo "freshlaundry/database/repository/booking"
	subscriptionRepo "freshlaundry/database/repository/subscription"
	"freshlaundry/models"
)

// recentBookingsLimit caps the dashboard's booking list.
const recentBookingsLimit = 10

// Overview is everything the customer dashboard renders.
type Overview struct {
	RecentBookings []models.BookingWithSlot     `json:"recentBookings"`
	Subscription   *models.SubscriptionWithPlan `json:"subscription,omitempty"`
	TotalPickups   int64                        `json:"totalPickups"`
	NextPickup     *models.BookingWithSlot      `json:"nextPickup,omitempty"`
}

// Service assembles the customer dashboard.
type Service interface {
	Overview(userID string) (*Overview, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Bookings bookingRepo.BookingRepository
	Subs     subscriptionRepo.SubscriptionRepository

	// Now is the dashboard's clock; tests override it. Nil means time.Now.
	Now func() time.Time
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Overview fetches the caller's recent bookings and active subscription
// and derives the summary figures.
func (s *DefaultService) Overview(userID string) (*Overview, error) {
	bookings, err := s.Bookings.ListByUser(userID, recentBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	total, err := s.Bookings.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	sub, err := s.Subs.GetActiveByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	return &Overview{
		RecentBookings: bookings,
		Subscription:   sub,
		TotalPickups:   total,
		NextPickup:     nextPickup(bookings, s.now()),
	}, nil
}

// nextPickup picks the pending or confirmed booking with the nearest
// pickup date that is not already past, regardless of list order.
func nextPickup(bookings []models.BookingWithSlot, now time.Time) *models.BookingWithSlot {
	today := now.Truncate(24 * time.Hour)

	var best *models.BookingWithSlot
	var bestDate time.Time
	for i := range bookings {
		b := &bookings[i]
		if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
			continue
		}
		date, err := time.Parse("2006-01-02", b.PickupDate)
		if err != nil || date.Before(today) {
			continue
		}
		if best == nil || date.Before(bestDate) {
			best = b
			bestDate = date
		}
	}
	return best
}
