package planRepo

import (
	"context"
	"fmt"
	"time"

	"freshlaundry/database"
	"freshlaundry/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPlanRepo implements PlanRepository using MongoDB.
type MongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo creates a new instance of PlanRepository using MongoDB.
func NewMongoPlanRepo() PlanRepository {
	coll := database.DB().Collection("plans")
	repo := &MongoPlanRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPlanRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListActive returns active plans ordered ascending by price.
func (r *MongoPlanRepo) ListActive() ([]models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "price", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer cursor.Close(ctx)

	var plans []models.Plan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode plans: %w", err)
	}
	return plans, nil
}

// GetByID retrieves a plan by its ID. Returns (nil, nil) when no plan matches.
func (r *MongoPlanRepo) GetByID(id string) (*models.Plan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var plan models.Plan
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&plan); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch plan with id %s: %w", id, err)
	}
	return &plan, nil
}

// SeedDefaults inserts the launch plans if the collection is empty.
func (r *MongoPlanRepo) SeedDefaults() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count plans: %w", err)
	}
	if n > 0 {
		return nil
	}

	defaults := []models.Plan{
		{
			Name:        "Basic",
			Price:       49,
			Period:      "month",
			Description: "Perfect for individuals",
			Features: []string{
				"Up to 20 lbs per month",
				"Free pickup & delivery",
				"48-hour turnaround",
				"Standard detergents",
			},
			IsActive:        true,
			MaxWeightLbs:    20,
			TurnaroundHours: 48,
		},
		{
			Name:        "Family",
			Price:       89,
			Period:      "month",
			Description: "Great for families",
			Features: []string{
				"Up to 50 lbs per month",
				"Free pickup & delivery",
				"24-hour turnaround",
				"Premium detergents",
				"Stain treatment included",
			},
			IsPopular:       true,
			IsActive:        true,
			MaxWeightLbs:    50,
			TurnaroundHours: 24,
		},
		{
			Name:        "Premium",
			Price:       149,
			Period:      "month",
			Description: "The complete service",
			Features: []string{
				"Unlimited weight",
				"Free pickup & delivery",
				"Same-day turnaround",
				"Eco-friendly detergents",
				"Dry cleaning included",
				"Priority scheduling",
			},
			IsActive:        true,
			TurnaroundHours: 12,
		},
	}

	docs := make([]interface{}, len(defaults))
	for i, plan := range defaults {
		plan.ID = uuid.New().String()
		docs[i] = plan
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed plans: %w", err)
	}
	return nil
}
