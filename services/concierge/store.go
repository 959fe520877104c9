package concierge

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"shalfa/models"

	"github.com/go-redis/redis/v8"
)

const chatKeyPrefix = "chat:sess:"

// TranscriptStore persists chat sessions for the widget's lifetime.
type TranscriptStore interface {
	Get(ctx context.Context, id string) (*models.ChatSession, error)
	Set(ctx context.Context, sess *models.ChatSession) error
	Delete(ctx context.Context, id string) error
}

// RedisTranscriptStore keeps sessions as JSON values with a TTL. Each Set
// refreshes the TTL, so active conversations never expire mid-exchange.
type RedisTranscriptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTranscriptStore(client *redis.Client, ttl time.Duration) *RedisTranscriptStore {
	return &RedisTranscriptStore{client: client, ttl: ttl}
}

func (s *RedisTranscriptStore) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	data, err := s.client.Get(ctx, chatKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.ChatSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisTranscriptStore) Set(ctx context.Context, sess *models.ChatSession) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatKeyPrefix+sess.ID, b, s.ttl).Err()
}

func (s *RedisTranscriptStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, chatKeyPrefix+id).Err()
}

// MemoryTranscriptStore is a map-backed store for tests and single-node runs.
type MemoryTranscriptStore struct {
	mu       sync.Mutex
	sessions map[string]models.ChatSession
}

func NewMemoryTranscriptStore() *MemoryTranscriptStore {
	return &MemoryTranscriptStore{sessions: make(map[string]models.ChatSession)}
}

func (s *MemoryTranscriptStore) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := sess
	cp.Messages = append([]models.ChatMessage(nil), sess.Messages...)
	return &cp, nil
}

func (s *MemoryTranscriptStore) Set(ctx context.Context, sess *models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	cp.Messages = append([]models.ChatMessage(nil), sess.Messages...)
	s.sessions[sess.ID] = cp
	return nil
}

func (s *MemoryTranscriptStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
