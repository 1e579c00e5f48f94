package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freshlaundry/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists in-flight wizard sessions.
type SessionStore interface {
	Get(sessionID string) (*models.BookingWizardSession, error)
	Save(session *models.BookingWizardSession) error
	Delete(sessionID string) error
}

// RedisSessionStore implements SessionStore on a dedicated Redis client.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore creates a SessionStore with the given TTL.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

const sessionKeyPrefix = "wizard:"

// Get retrieves a session. Returns (nil, nil) when it does not exist.
func (s *RedisSessionStore) Get(sessionID string) (*models.BookingWizardSession, error) {
	ctx := context.Background()

	data, err := s.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}

	var session models.BookingWizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// Save stores the session, refreshing its TTL.
func (s *RedisSessionStore) Save(session *models.BookingWizardSession) error {
	ctx := context.Background()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (s *RedisSessionStore) Delete(sessionID string) error {
	ctx := context.Background()

	if err := s.Client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
