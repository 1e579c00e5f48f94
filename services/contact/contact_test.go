package contact

import (
	"testing"

	"freshlaundry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContactRepo struct {
	created []models.ContactSubmission
}

func (r *stubContactRepo) Create(c *models.ContactSubmission) error {
	r.created = append(r.created, *c)
	return nil
}
func (r *stubContactRepo) ListRecent(int64) ([]models.ContactSubmission, error) {
	return nil, nil
}
func (r *stubContactRepo) MarkRead(string) error       { return nil }
func (r *stubContactRepo) CountUnread() (int64, error) { return 0, nil }

type stubNotifier struct {
	contacts int
}

func (n *stubNotifier) NotifyBookingCreated(string, string, string) error { return nil }
func (n *stubNotifier) NotifyContactReceived(string, string) error {
	n.contacts++
	return nil
}
func (n *stubNotifier) NotifyPickupDue(string, string, string) error { return nil }

func TestSubmitStoresAndNotifies(t *testing.T) {
	repo := &stubContactRepo{}
	notifier := &stubNotifier{}
	svc := &DefaultService{Repo: repo, Notifier: notifier}

	sub, err := svc.Submit(SubmitRequest{
		Name:    "  Jane Doe  ",
		Email:   "jane@example.com",
		Phone:   "555-0100",
		Message: "Do you handle duvets?",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Jane Doe", sub.Name)
	require.NotNil(t, sub.Phone)
	assert.Equal(t, "555-0100", *sub.Phone)
	assert.Equal(t, 1, notifier.contacts)
}

func TestSubmitEmptyPhoneIsStoredAsNull(t *testing.T) {
	repo := &stubContactRepo{}
	svc := &DefaultService{Repo: repo}

	sub, err := svc.Submit(SubmitRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "   ",
		Message: "hello",
	})
	require.NoError(t, err)
	assert.Nil(t, sub.Phone)
	require.Len(t, repo.created, 1)
	assert.Nil(t, repo.created[0].Phone)
}

func TestSubmitRequiresCoreFields(t *testing.T) {
	repo := &stubContactRepo{}
	svc := &DefaultService{Repo: repo}

	cases := []SubmitRequest{
		{Email: "jane@example.com", Message: "hi"},
		{Name: "Jane", Message: "hi"},
		{Name: "Jane", Email: "jane@example.com"},
		{Name: "   ", Email: "jane@example.com", Message: "hi"},
	}
	for _, req := range cases {
		_, err := svc.Submit(req)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
	assert.Empty(t, repo.created)
}

func TestSubmitRejectsMalformedEmail(t *testing.T) {
	repo := &stubContactRepo{}
	svc := &DefaultService{Repo: repo}

	_, err := svc.Submit(SubmitRequest{Name: "Jane", Email: "not-an-email", Message: "hi"})
	require.Error(t, err)
	assert.Empty(t, repo.created)
}
