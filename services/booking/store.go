package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"shalfa/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "booking:sess:"

// DraftStore persists booking sessions for the form's lifetime.
type DraftStore interface {
	Get(ctx context.Context, id string) (*models.BookingSession, error)
	Set(ctx context.Context, sess *models.BookingSession) error
	Delete(ctx context.Context, id string) error
}

// RedisDraftStore keeps sessions as JSON values with a TTL.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (s *RedisDraftStore) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.BookingSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisDraftStore) Set(ctx context.Context, sess *models.BookingSession) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sess.ID, b, s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

// MemoryDraftStore is a map-backed store for tests and single-node runs.
type MemoryDraftStore struct {
	mu       sync.Mutex
	sessions map[string]models.BookingSession
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{sessions: make(map[string]models.BookingSession)}
}

func (s *MemoryDraftStore) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *MemoryDraftStore) Set(ctx context.Context, sess *models.BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *MemoryDraftStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
