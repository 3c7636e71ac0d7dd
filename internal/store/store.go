package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hazwanhalim/suaraform/internal/model"
)

// ErrNotFound is returned when no draft is stored for a session.
var ErrNotFound = errors.New("draft not found")

// DraftStore persists in-progress application records so a session can
// be resumed after a disconnect.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftStore(addr, password string, db int, ttl time.Duration) *DraftStore {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &DraftStore{client: client, ttl: ttl}
}

func (s *DraftStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *DraftStore) Close() error {
	return s.client.Close()
}

// Save stores the record under the session id, refreshing the TTL.
func (s *DraftStore) Save(ctx context.Context, sessionID string, record *model.ApplicationRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	err = s.client.Set(ctx, draftKey(sessionID), b, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("save draft %s: %w", sessionID, err)
	}
	return nil
}

// Load returns the stored record or ErrNotFound.
func (s *DraftStore) Load(ctx context.Context, sessionID string) (*model.ApplicationRecord, error) {
	b, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load draft %s: %w", sessionID, err)
	}
	var record model.ApplicationRecord
	err = json.Unmarshal(b, &record)
	if err != nil {
		return nil, fmt.Errorf("unmarshal draft %s: %w", sessionID, err)
	}
	return &record, nil
}

// Delete removes the draft, typically after a successful submission.
func (s *DraftStore) Delete(ctx context.Context, sessionID string) error {
	err := s.client.Del(ctx, draftKey(sessionID)).Err()
	if err != nil {
		return fmt.Errorf("delete draft %s: %w", sessionID, err)
	}
	return nil
}

func draftKey(sessionID string) string {
	return "suaraform:draft:" + sessionID
}
