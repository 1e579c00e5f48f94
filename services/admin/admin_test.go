package admin

import (
	"fmt"
	"testing"

	"freshlaundry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingUserRepo struct{ users int64 }

func (r *countingUserRepo) Create(*models.User) error { return nil }
func (r *countingUserRepo) Update(*models.User) error { return nil }
func (r *countingUserRepo) GetByID(string) (*models.User, error) { return nil, nil }
func (r *countingUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (r *countingUserRepo) GetByTokenHash(string) (*models.User, error) { return nil, nil }
func (r *countingUserRepo) SetTokenHash(string, string) error { return nil }
func (r *countingUserRepo) Count() (int64, error) { return r.users, nil }

type countingSubRepo struct{ active int64 }

func (r *countingSubRepo) CreateActive(*models.Subscription) error { return nil }
func (r *countingSubRepo) GetActiveByUser(string) (*models.SubscriptionWithPlan, error) {
	return nil, nil
}
func (r *countingSubRepo) CountActive() (int64, error) { return r.active, nil }

type statusBookingRepo struct {
	pending  int64
	statuses map[string]string
	updated  []string
}

func (r *statusBookingRepo) Create(*models.Booking) error { return nil }
func (r *statusBookingRepo) ListByUser(string, int64) ([]models.BookingWithSlot, error) {
	return nil, nil
}
func (r *statusBookingRepo) CountByUser(string) (int64, error) { return 0, nil }
func (r *statusBookingRepo) ListRecent(limit int64) ([]models.AdminBooking, error) {
	return []models.AdminBooking{}, nil
}
func (r *statusBookingRepo) UpdateStatus(id, status string) (*models.Booking, error) {
	if _, ok := r.statuses[id]; !ok {
		return nil, fmt.Errorf("booking with id %s not found", id)
	}
	r.statuses[id] = status
	r.updated = append(r.updated, id)
	return &models.Booking{ID: id, Status: status}, nil
}
func (r *statusBookingRepo) CountByStatus(string) (int64, error) { return r.pending, nil }

type readTrackingContactRepo struct {
	unread int64
	read   []string
}

func (r *readTrackingContactRepo) Create(*models.ContactSubmission) error { return nil }
func (r *readTrackingContactRepo) ListRecent(int64) ([]models.ContactSubmission, error) {
	return nil, nil
}
func (r *readTrackingContactRepo) MarkRead(id string) error {
	r.read = append(r.read, id)
	return nil
}
func (r *readTrackingContactRepo) CountUnread() (int64, error) { return r.unread, nil }

type readTrackingNotificationRepo struct {
	read []string
}

func (r *readTrackingNotificationRepo) Create(*models.Notification) error { return nil }
func (r *readTrackingNotificationRepo) ListRecent(int64) ([]models.Notification, error) {
	return nil, nil
}
func (r *readTrackingNotificationRepo) MarkRead(id string) error {
	r.read = append(r.read, id)
	return nil
}

func newTestAdmin() (*DefaultService, *statusBookingRepo, *readTrackingContactRepo, *readTrackingNotificationRepo) {
	bookings := &statusBookingRepo{
		pending: 4,
		statuses: map[string]string{
			"b1": models.BookingStatusPending,
			"b2": models.BookingStatusConfirmed,
		},
	}
	contacts := &readTrackingContactRepo{unread: 2}
	notifications := &readTrackingNotificationRepo{}
	svc := &DefaultService{
		Users:         &countingUserRepo{users: 12},
		Subs:          &countingSubRepo{active: 7},
		Bookings:      bookings,
		Contacts:      contacts,
		Notifications: notifications,
	}
	return svc, bookings, contacts, notifications
}

func TestGetStats(t *testing.T) {
	svc, _, _, _ := newTestAdmin()

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(7), stats.ActiveSubscriptions)
	assert.Equal(t, int64(4), stats.PendingBookings)
	assert.Equal(t, int64(2), stats.UnreadMessages)
}

func TestUpdateBookingStatusTouchesOnlyTheTarget(t *testing.T) {
	svc, bookings, _, _ := newTestAdmin()

	updated, err := svc.UpdateBookingStatus("b1", models.BookingStatusPickedUp)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPickedUp, updated.Status)
	assert.Equal(t, []string{"b1"}, bookings.updated)
	assert.Equal(t, models.BookingStatusConfirmed, bookings.statuses["b2"])
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	svc, bookings, _, _ := newTestAdmin()

	_, err := svc.UpdateBookingStatus("b1", "teleported")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid booking status")
	// The store is never touched with a bad status.
	assert.Empty(t, bookings.updated)
}

func TestUpdateBookingStatusUnknownBooking(t *testing.T) {
	svc, _, _, _ := newTestAdmin()

	_, err := svc.UpdateBookingStatus("missing", models.BookingStatusConfirmed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMarkReadPassesThrough(t *testing.T) {
	svc, _, contacts, notifications := newTestAdmin()

	require.NoError(t, svc.MarkContactRead("c1"))
	require.NoError(t, svc.MarkContactRead("c1")) // idempotent
	assert.Equal(t, []string{"c1", "c1"}, contacts.read)

	require.NoError(t, svc.MarkNotificationRead("n1"))
	assert.Equal(t, []string{"n1"}, notifications.read)
}
