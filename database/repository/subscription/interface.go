package subscriptionRepo

import (
	"errors"

	"freshlaundry/models"
)

// ErrDuplicateActive is returned by CreateActive when the user already
// holds an active subscription. The partial unique index makes the insert
// itself the uniqueness check, so concurrent subscribe attempts cannot
// both succeed.
var ErrDuplicateActive = errors.New("user already has an active subscription")

// SubscriptionRepository defines persistence operations for subscriptions.
type SubscriptionRepository interface {
	CreateActive(sub *models.Subscription) error
	GetActiveByUser(userID string) (*models.SubscriptionWithPlan, error)
	CountActive() (int64, error)
}
