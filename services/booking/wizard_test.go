package booking

import (
	"testing"
	"time"

	"freshlaundry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionStore mimics the Redis store, including its copy-on-read
// behavior: callers never share memory with the stored session.
type memSessionStore struct {
	sessions map[string]models.BookingWizardSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]models.BookingWizardSession)}
}

func (s *memSessionStore) Get(sessionID string) (*models.BookingWizardSession, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	out := sess
	out.TimeSlots = append([]models.TimeSlot(nil), sess.TimeSlots...)
	return &out, nil
}

func (s *memSessionStore) Save(session *models.BookingWizardSession) error {
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *memSessionStore) Delete(sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type fakeBookingRepo struct {
	created []models.Booking
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.created = append(r.created, *b)
	return nil
}
func (r *fakeBookingRepo) ListByUser(string, int64) ([]models.BookingWithSlot, error) {
	return nil, nil
}
func (r *fakeBookingRepo) CountByUser(string) (int64, error) { return 0, nil }
func (r *fakeBookingRepo) ListRecent(int64) ([]models.AdminBooking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) UpdateStatus(string, string) (*models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) CountByStatus(string) (int64, error) { return 0, nil }

type fakeSlotRepo struct {
	slots []models.TimeSlot
}

func (r *fakeSlotRepo) ListActive() ([]models.TimeSlot, error) { return r.slots, nil }
func (r *fakeSlotRepo) SeedDefaults() error { return nil }

type fakeSubRepo struct {
	active *models.SubscriptionWithPlan
}

func (r *fakeSubRepo) CreateActive(*models.Subscription) error { return nil }
func (r *fakeSubRepo) GetActiveByUser(string) (*models.SubscriptionWithPlan, error) {
	return r.active, nil
}
func (r *fakeSubRepo) CountActive() (int64, error) { return 0, nil }

type fakeUserRepo struct {
	user *models.User
}

func (r *fakeUserRepo) Create(*models.User) error { return nil }
func (r *fakeUserRepo) Update(*models.User) error { return nil }
func (r *fakeUserRepo) GetByID(string) (*models.User, error) { return r.user, nil }
func (r *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) GetByTokenHash(string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) SetTokenHash(string, string) error { return nil }
func (r *fakeUserRepo) Count() (int64, error) { return 0, nil }

type fakeNotifier struct {
	bookings int
	contacts int
	pickups  int
}

func (n *fakeNotifier) NotifyBookingCreated(string, string, string) error {
	n.bookings++
	return nil
}
func (n *fakeNotifier) NotifyContactReceived(string, string) error {
	n.contacts++
	return nil
}
func (n *fakeNotifier) NotifyPickupDue(string, string, string) error {
	n.pickups++
	return nil
}

type fakeScheduler struct {
	payloads []models.ReminderPayload
	fireAts  []time.Time
}

func (s *fakeScheduler) SchedulePickupReminder(p models.ReminderPayload, fireAt time.Time) error {
	s.payloads = append(s.payloads, p)
	s.fireAts = append(s.fireAts, fireAt)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func newTestWizard() (*DefaultWizardService, *fakeBookingRepo, *memSessionStore, *fakeNotifier, *fakeScheduler) {
	bookings := &fakeBookingRepo{}
	store := newMemSessionStore()
	notifier := &fakeNotifier{}
	scheduler := &fakeScheduler{}
	svc := &DefaultWizardService{
		Bookings: bookings,
		Slots: &fakeSlotRepo{slots: []models.TimeSlot{
			{ID: "slot-1", SlotName: "Morning", StartTime: "07:00", EndTime: "10:00", IsActive: true},
			{ID: "slot-2", SlotName: "Evening", StartTime: "17:00", EndTime: "21:00", IsActive: true},
		}},
		Subscriptions: &fakeSubRepo{active: &models.SubscriptionWithPlan{}},
		Users:         &fakeUserRepo{user: &models.User{ID: "user-1", FullName: "Jane Doe", Address: "12 Main St"}},
		Sessions:      store,
		Notifier:      notifier,
		Reminders:     scheduler,
		Now:           fixedNow,
	}
	return svc, bookings, store, notifier, scheduler
}

func TestStartSessionRequiresSubscription(t *testing.T) {
	svc, _, store, _, _ := newTestWizard()
	svc.Subscriptions = &fakeSubRepo{active: nil}

	session, err := svc.StartSession("user-1")
	require.ErrorIs(t, err, ErrNoSubscription)
	assert.Nil(t, session)
	assert.Empty(t, store.sessions)
}

func TestStartSessionLoadsSlotsAndAddress(t *testing.T) {
	svc, _, store, _, _ := newTestWizard()

	session, err := svc.StartSession("user-1")
	require.NoError(t, err)
	assert.Equal(t, models.WizardStepDate, session.Step)
	assert.Len(t, session.TimeSlots, 2)
	assert.Equal(t, "12 Main St", session.Address)
	assert.Contains(t, store.sessions, session.SessionID)
}

func TestUpdateSessionDateAdvancesToSlotStep(t *testing.T) {
	svc, _, _, _, _ := newTestWizard()
	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	updated, err := svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionDate,
		PickupDate: "2026-03-12",
	})
	require.NoError(t, err)
	assert.Equal(t, models.WizardStepSlot, updated.Step)
	assert.Equal(t, "2026-03-12", updated.PickupDate)
}

func TestUpdateSessionRejectsPastDate(t *testing.T) {
	svc, _, store, _, _ := newTestWizard()
	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionDate,
		PickupDate: "2026-03-09",
	})
	require.ErrorIs(t, err, ErrPastDate)

	// The stored session must be untouched by the failed transition.
	stored := store.sessions[session.SessionID]
	assert.Equal(t, models.WizardStepDate, stored.Step)
	assert.Empty(t, stored.PickupDate)
}

func TestUpdateSessionAcceptsToday(t *testing.T) {
	svc, _, _, _, _ := newTestWizard()
	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	updated, err := svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionDate,
		PickupDate: "2026-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, models.WizardStepSlot, updated.Step)
}

func TestUpdateSessionSlotValidation(t *testing.T) {
	svc, _, _, _, _ := newTestWizard()
	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	// Slot before date is rejected.
	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionSlot,
		TimeSlotID: "slot-1",
	})
	require.ErrorIs(t, err, ErrMissingDate)

	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionDate,
		PickupDate: "2026-03-12",
	})
	require.NoError(t, err)

	// Unknown slot is rejected.
	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionSlot,
		TimeSlotID: "slot-99",
	})
	require.ErrorIs(t, err, ErrUnknownSlot)

	updated, err := svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionSlot,
		TimeSlotID: "slot-2",
	})
	require.NoError(t, err)
	assert.Equal(t, models.WizardStepConfirm, updated.Step)
}

func TestUpdateSessionBackStepsDown(t *testing.T) {
	svc, _, _, _, _ := newTestWizard()
	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionDate,
		PickupDate: "2026-03-12",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{Action: ActionBack})
	require.NoError(t, err)
	assert.Equal(t, models.WizardStepDate, updated.Step)

	// Back on the first step stays on the first step.
	updated, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{Action: ActionBack})
	require.NoError(t, err)
	assert.Equal(t, models.WizardStepDate, updated.Step)
}

func TestSessionOwnershipIsEnforced(t *testing.T) {
	svc, _, _, _, _ := newTestWizard()
	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	_, err = svc.UpdateSession(session.SessionID, "user-2", UpdateRequest{Action: ActionBack})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = svc.CancelSession(session.SessionID, "user-2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmBookingCreatesPendingAndConsumesSession(t *testing.T) {
	svc, bookings, store, notifier, scheduler := newTestWizard()
	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionDate,
		PickupDate: "2026-03-12",
	})
	require.NoError(t, err)
	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionSlot,
		TimeSlotID: "slot-1",
	})
	require.NoError(t, err)

	created, err := svc.ConfirmBooking(session.SessionID, "user-1", ConfirmRequest{
		Address:      "  12 Main St  ",
		Instructions: "ring the bell",
	})
	require.NoError(t, err)
	require.Len(t, bookings.created, 1)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Equal(t, "12 Main St", created.Address)
	require.NotNil(t, created.SpecialInstructions)
	assert.Equal(t, "ring the bell", *created.SpecialInstructions)

	// The session is consumed; confirming again cannot create a second row.
	assert.NotContains(t, store.sessions, session.SessionID)
	_, err = svc.ConfirmBooking(session.SessionID, "user-1", ConfirmRequest{Address: "12 Main St"})
	require.ErrorIs(t, err, ErrSessionNotFound)
	assert.Len(t, bookings.created, 1)

	// Fan-out: one admin notification and one reminder on the pickup morning.
	assert.Equal(t, 1, notifier.bookings)
	require.Len(t, scheduler.payloads, 1)
	assert.Equal(t, created.ID, scheduler.payloads[0].BookingID)
	assert.Equal(t, "Morning", scheduler.payloads[0].SlotName)
	expectedFire := time.Date(2026, 3, 12, 7, 0, 0, 0, time.Local)
	assert.Equal(t, expectedFire, scheduler.fireAts[0])
}

func TestConfirmBookingRequiresAddress(t *testing.T) {
	svc, bookings, store, _, _ := newTestWizard()
	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionDate,
		PickupDate: "2026-03-12",
	})
	require.NoError(t, err)
	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionSlot,
		TimeSlotID: "slot-1",
	})
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(session.SessionID, "user-1", ConfirmRequest{Address: "   "})
	require.ErrorIs(t, err, ErrMissingAddress)
	assert.Empty(t, bookings.created)
	// A failed confirm keeps the session alive.
	assert.Contains(t, store.sessions, session.SessionID)
}

func TestConfirmBookingWithoutInstructionsStoresNull(t *testing.T) {
	svc, bookings, _, _, _ := newTestWizard()
	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionDate,
		PickupDate: "2026-03-12",
	})
	require.NoError(t, err)
	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{
		Action:     ActionSlot,
		TimeSlotID: "slot-1",
	})
	require.NoError(t, err)

	created, err := svc.ConfirmBooking(session.SessionID, "user-1", ConfirmRequest{
		Address:      "12 Main St",
		Instructions: "   ",
	})
	require.NoError(t, err)
	require.Len(t, bookings.created, 1)
	assert.Nil(t, created.SpecialInstructions)
}

func TestUpdateSessionUnknownAction(t *testing.T) {
	svc, _, _, _, _ := newTestWizard()
	session, err := svc.StartSession("user-1")
	require.NoError(t, err)

	_, err = svc.UpdateSession(session.SessionID, "user-1", UpdateRequest{Action: "teleport"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}
