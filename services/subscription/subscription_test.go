package subscription

import (
	"testing"

	subscriptionRepo "freshlaundry/database/repository/subscription"
	"freshlaundry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlanRepo struct {
	plans map[string]*models.Plan
}

func (r *stubPlanRepo) ListActive() ([]models.Plan, error) { return nil, nil }
func (r *stubPlanRepo) GetByID(id string) (*models.Plan, error) {
	return r.plans[id], nil
}
func (r *stubPlanRepo) SeedDefaults() error { return nil }

type stubSubRepo struct {
	created   []models.Subscription
	duplicate bool
	active    *models.SubscriptionWithPlan
}

func (r *stubSubRepo) CreateActive(sub *models.Subscription) error {
	if r.duplicate {
		return subscriptionRepo.ErrDuplicateActive
	}
	r.created = append(r.created, *sub)
	return nil
}
func (r *stubSubRepo) GetActiveByUser(string) (*models.SubscriptionWithPlan, error) {
	return r.active, nil
}
func (r *stubSubRepo) CountActive() (int64, error) { return 0, nil }

func newTestService(duplicate bool) (*DefaultService, *stubSubRepo) {
	subs := &stubSubRepo{duplicate: duplicate}
	svc := &DefaultService{
		Subs: subs,
		Plans: &stubPlanRepo{plans: map[string]*models.Plan{
			"plan-basic":   {ID: "plan-basic", Name: "Basic", IsActive: true},
			"plan-retired": {ID: "plan-retired", Name: "Retired", IsActive: false},
		}},
	}
	return svc, subs
}

func TestSubscribeActivatesPlan(t *testing.T) {
	svc, subs := newTestService(false)

	sub, err := svc.Subscribe("user-1", "plan-basic")
	require.NoError(t, err)
	assert.Equal(t, "plan-basic", sub.PlanID)
	assert.Equal(t, "user-1", sub.UserID)
	require.Len(t, subs.created, 1)
}

func TestSubscribeUnknownPlan(t *testing.T) {
	svc, subs := newTestService(false)

	_, err := svc.Subscribe("user-1", "no-such-plan")
	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.Empty(t, subs.created)
}

func TestSubscribeInactivePlan(t *testing.T) {
	svc, subs := newTestService(false)

	_, err := svc.Subscribe("user-1", "plan-retired")
	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.Empty(t, subs.created)
}

func TestSubscribeConflictsWithExistingActive(t *testing.T) {
	// The store's duplicate signal surfaces as ErrAlreadySubscribed, no
	// matter how the two attempts interleave.
	svc, subs := newTestService(true)

	_, err := svc.Subscribe("user-1", "plan-basic")
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	assert.Empty(t, subs.created)
}

func TestActiveForUserPassesThrough(t *testing.T) {
	svc, subs := newTestService(false)
	subs.active = &models.SubscriptionWithPlan{
		Subscription: models.Subscription{ID: "sub-1", UserID: "user-1"},
		Plan:         &models.Plan{ID: "plan-basic", Name: "Basic"},
	}

	got, err := svc.ActiveForUser("user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "sub-1", got.ID)
	require.NotNil(t, got.Plan)
	assert.Equal(t, "Basic", got.Plan.Name)
}
