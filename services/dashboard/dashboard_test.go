package dashboard

import (
	"testing"
	"time"

	"freshlaundry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingRepo struct {
	bookings []models.BookingWithSlot
	total    int64
}

func (r *stubBookingRepo) Create(*models.Booking) error { return nil }
func (r *stubBookingRepo) ListByUser(string, int64) ([]models.BookingWithSlot, error) {
	return r.bookings, nil
}
func (r *stubBookingRepo) CountByUser(string) (int64, error) { return r.total, nil }
func (r *stubBookingRepo) ListRecent(int64) ([]models.AdminBooking, error) {
	return nil, nil
}
func (r *stubBookingRepo) UpdateStatus(string, string) (*models.Booking, error) {
	return nil, nil
}
func (r *stubBookingRepo) CountByStatus(string) (int64, error) { return 0, nil }

type stubSubRepo struct {
	active *models.SubscriptionWithPlan
}

func (r *stubSubRepo) CreateActive(*models.Subscription) error { return nil }
func (r *stubSubRepo) GetActiveByUser(string) (*models.SubscriptionWithPlan, error) {
	return r.active, nil
}
func (r *stubSubRepo) CountActive() (int64, error) { return 0, nil }

func withSlot(id, date, status string) models.BookingWithSlot {
	return models.BookingWithSlot{
		Booking: models.Booking{ID: id, PickupDate: date, Status: status},
	}
}

func dashNow() time.Time {
	return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
}

func TestOverviewTotalsComeFromTheFullCount(t *testing.T) {
	// The list is capped, the total is not.
	svc := &DefaultService{
		Bookings: &stubBookingRepo{
			bookings: []models.BookingWithSlot{withSlot("b1", "2026-03-12", models.BookingStatusPending)},
			total:    37,
		},
		Subs: &stubSubRepo{},
		Now:  dashNow,
	}

	overview, err := svc.Overview("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(37), overview.TotalPickups)
	assert.Len(t, overview.RecentBookings, 1)
}

func TestNextPickupIsTheNearestUpcoming(t *testing.T) {
	// The newest booking is not necessarily the next pickup.
	bookings := []models.BookingWithSlot{
		withSlot("far", "2026-04-01", models.BookingStatusPending),
		withSlot("near", "2026-03-12", models.BookingStatusConfirmed),
		withSlot("past", "2026-03-01", models.BookingStatusPending),
		withSlot("done", "2026-03-11", models.BookingStatusDelivered),
	}

	next := nextPickup(bookings, dashNow())
	require.NotNil(t, next)
	assert.Equal(t, "near", next.ID)
}

func TestNextPickupIgnoresCancelledAndPast(t *testing.T) {
	bookings := []models.BookingWithSlot{
		withSlot("cancelled", "2026-03-15", models.BookingStatusCancelled),
		withSlot("past", "2026-03-09", models.BookingStatusPending),
	}

	assert.Nil(t, nextPickup(bookings, dashNow()))
}

func TestNextPickupAcceptsToday(t *testing.T) {
	bookings := []models.BookingWithSlot{
		withSlot("today", "2026-03-10", models.BookingStatusConfirmed),
	}

	next := nextPickup(bookings, dashNow())
	require.NotNil(t, next)
	assert.Equal(t, "today", next.ID)
}

func TestOverviewWithoutSubscription(t *testing.T) {
	svc := &DefaultService{
		Bookings: &stubBookingRepo{},
		Subs:     &stubSubRepo{active: nil},
		Now:      dashNow,
	}

	overview, err := svc.Overview("user-1")
	require.NoError(t, err)
	assert.Nil(t, overview.Subscription)
	assert.Nil(t, overview.NextPickup)
	assert.Zero(t, overview.TotalPickups)
}
