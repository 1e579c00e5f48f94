package models

import "time"

// Subscription statuses.
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
)

// Subscription ties a user to a plan. The store enforces at most one
// active subscription per user via a partial unique index.
type Subscription struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	PlanID    string    `bson:"plan_id" json:"planId"`
	Status    string    `bson:"status" json:"status"`
	StartDate time.Time `bson:"start_date" json:"startDate"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// SubscriptionWithPlan is a subscription joined with its plan.
type SubscriptionWithPlan struct {
	Subscription `bson:",inline"`
	Plan         *Plan `bson:"plan,omitempty" json:"plan,omitempty"`
}
