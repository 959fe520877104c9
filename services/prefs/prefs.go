// Package prefs stores per-client site settings: language, theme and the
// concierge tooltip dismissal. Unlike the session stores these never
// expire; a returning visitor keeps their choices.
package prefs

import (
	"context"
	"encoding/json"
	"sync"

	"shalfa/i18n"
	"shalfa/models"

	"github.com/go-redis/redis/v8"
)

const prefsKeyPrefix = "prefs:"

// Store persists preferences keyed by client id.
type Store interface {
	Get(ctx context.Context, clientID string) (*models.Preferences, error)
	Set(ctx context.Context, clientID string, p models.Preferences) error
}

// RedisStore keeps preferences as JSON values without expiry.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, clientID string) (*models.Preferences, error) {
	data, err := s.client.Get(ctx, prefsKeyPrefix+clientID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p models.Preferences
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *RedisStore) Set(ctx context.Context, clientID string, p models.Preferences) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, prefsKeyPrefix+clientID, b, 0).Err()
}

// MemoryStore is a map-backed store for tests and single-node runs.
type MemoryStore struct {
	mu    sync.Mutex
	prefs map[string]models.Preferences
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]models.Preferences)}
}

func (s *MemoryStore) Get(ctx context.Context, clientID string) (*models.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.prefs[clientID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *MemoryStore) Set(ctx context.Context, clientID string, p models.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[clientID] = p
	return nil
}

// Update carries partial preference edits; nil fields are untouched.
type Update struct {
	Language         *i18n.Language `json:"language"`
	Theme            *models.Theme  `json:"theme"`
	TooltipDismissed *bool          `json:"tooltipDismissed"`
}

// Service reads and writes client preferences.
type Service interface {
	Get(ctx context.Context, clientID string) (models.Preferences, error)
	Update(ctx context.Context, clientID string, upd Update) (models.Preferences, error)
}

// DefaultService falls back to defaults for unknown clients and only
// writes on explicit updates.
type DefaultService struct {
	Store Store
}

func (s *DefaultService) Get(ctx context.Context, clientID string) (models.Preferences, error) {
	p, err := s.Store.Get(ctx, clientID)
	if err != nil {
		return models.Preferences{}, err
	}
	if p == nil {
		return models.DefaultPreferences(), nil
	}
	return *p, nil
}

// Update applies the edits on top of the stored (or default) settings.
// Invalid language or theme values are ignored rather than rejected; the
// tooltip dismissal is one-way and cannot be cleared.
func (s *DefaultService) Update(ctx context.Context, clientID string, upd Update) (models.Preferences, error) {
	p, err := s.Get(ctx, clientID)
	if err != nil {
		return models.Preferences{}, err
	}

	if upd.Language != nil && upd.Language.Valid() {
		p.Language = *upd.Language
	}
	if upd.Theme != nil && (*upd.Theme == models.ThemeLight || *upd.Theme == models.ThemeDark) {
		p.Theme = *upd.Theme
	}
	if upd.TooltipDismissed != nil && *upd.TooltipDismissed {
		p.TooltipDismissed = true
	}

	if err := s.Store.Set(ctx, clientID, p); err != nil {
		return models.Preferences{}, err
	}
	return p, nil
}
