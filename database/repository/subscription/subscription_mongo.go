package subscriptionRepo

import (
	"context"
	"fmt"
	"time"

	"freshlaundry/database"
	"freshlaundry/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubscriptionRepo implements SubscriptionRepository using MongoDB.
type MongoSubscriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepo creates a new instance of SubscriptionRepository using MongoDB.
func NewMongoSubscriptionRepo() SubscriptionRepository {
	coll := database.DB().Collection("user_subscriptions")
	repo := &MongoSubscriptionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the partial unique index that enforces at most
// one active subscription per user at the store level.
func (r *MongoSubscriptionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.SubscriptionStatusActive}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// CreateActive inserts an active subscription. A duplicate-key error from
// the partial unique index is mapped to ErrDuplicateActive.
func (r *MongoSubscriptionRepo) CreateActive(sub *models.Subscription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	sub.Status = models.SubscriptionStatusActive
	sub.CreatedAt = time.Now()
	if sub.StartDate.IsZero() {
		sub.StartDate = sub.CreatedAt
	}

	_, err := r.coll.InsertOne(ctx, sub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateActive
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// GetActiveByUser returns the user's active subscription joined with its
// plan, or (nil, nil) when the user has none.
func (r *MongoSubscriptionRepo) GetActiveByUser(userID string) (*models.SubscriptionWithPlan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"user_id": userID, "status": models.SubscriptionStatusActive}},
		{"$limit": 1},
		{"$lookup": bson.M{
			"from":         "plans",
			"localField":   "plan_id",
			"foreignField": "id",
			"as":           "plan",
		}},
		{"$set": bson.M{"plan": bson.M{"$arrayElemAt": []interface{}{"$plan", 0}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscription for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var subs []models.SubscriptionWithPlan
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("failed to decode subscription: %w", err)
	}
	if len(subs) == 0 {
		return nil, nil
	}
	return &subs[0], nil
}

// CountActive returns the number of active subscriptions across all users.
func (r *MongoSubscriptionRepo) CountActive() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": models.SubscriptionStatusActive})
	if err != nil {
		return 0, fmt.Errorf("failed to count active subscriptions: %w", err)
	}
	return n, nil
}
