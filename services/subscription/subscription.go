package subscription

import (
	"errors"
	"fmt"
	"time"

	planRepo "freshlaundry/database/repository/plan"
	subscriptionRepo "freshlaundry/database/repository/subscription"
	"freshlaundry/models"
	"freshlaundry/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrAlreadySubscribed is returned when the user already holds an
	// active subscription. The store's unique index makes this reliable
	// under concurrent subscribe attempts.
	ErrAlreadySubscribed = errors.New("you already have an active subscription; cancel it first to change plans")

	// ErrPlanNotFound covers unknown and inactive plans.
	ErrPlanNotFound = errors.New("plan not found")
)

// Service manages plan subscriptions.
type Service interface {
	Subscribe(userID, planID string) (*models.Subscription, error)
	ActiveForUser(userID string) (*models.SubscriptionWithPlan, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Subs  subscriptionRepo.SubscriptionRepository
	Plans planRepo.PlanRepository
}

// Subscribe activates the chosen plan for the user with a single
// conditional insert; there is no check-then-act window.
func (s *DefaultService) Subscribe(userID, planID string) (*models.Subscription, error) {
	plan, err := s.Plans.GetByID(planID)
	if err != nil {
		utils.GetLogger().Error("subscribe: failed to fetch plan", zap.String("planID", planID), zap.Error(err))
		return nil, fmt.Errorf("subscription failed, please try again")
	}
	if plan == nil || !plan.IsActive {
		return nil, ErrPlanNotFound
	}

	sub := &models.Subscription{
		ID:        uuid.New().String(),
		UserID:    userID,
		PlanID:    planID,
		StartDate: time.Now(),
	}
	if err := s.Subs.CreateActive(sub); err != nil {
		if errors.Is(err, subscriptionRepo.ErrDuplicateActive) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}
	return sub, nil
}

// ActiveForUser returns the user's active subscription joined with its
// plan, or nil when there is none.
func (s *DefaultService) ActiveForUser(userID string) (*models.SubscriptionWithPlan, error) {
	return s.Subs.GetActiveByUser(userID)
}
