package timeslotRepo

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

// MongoTimeSlotRepo implements TimeSlotRepository using MongoDB.
type MongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo creates a new instance of TimeSlotRepository using MongoDB.
func NewMongoTimeSlotRepo() TimeSlotRepository {
	coll := database.DB().Collection("time_slots")
	repo := &MongoTimeSlotRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTimeSlotRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slot_name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListActive returns active pickup windows ordered by start time.
func (r *MongoTimeSlotRepo) ListActive() ([]models.TimeSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode time slots: %w", err)
	}
	return slots, nil
}

// SeedDefaults inserts the default pickup windows if the collection is empty.
func (r *MongoTimeSlotRepo) SeedDefaults() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count time slots: %w", err)
	}
	if n > 0 {
		return nil
	}

	defaults := []models.TimeSlot{
		{SlotName: "Morning (7AM - 10AM)", StartTime: "07:00", EndTime: "10:00", IsActive: true},
		{SlotName: "Midday (10AM - 1PM)", StartTime: "10:00", EndTime: "13:00", IsActive: true},
		{SlotName: "Afternoon (1PM - 5PM)", StartTime: "13:00", EndTime: "17:00", IsActive: true},
		{SlotName: "Evening (5PM - 9PM)", StartTime: "17:00", EndTime: "21:00", IsActive: true},
	}

	docs := make([]interface{}, len(defaults))
	for i, slot := range defaults {
		slot.ID = uuid.New().String()
		docs[i] = slot
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed time slots: %w", err)
	}
	return nil
}
