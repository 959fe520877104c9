package concierge

import (
	"context"
	"strings"
	"time"

	"shalfa/i18n"
	"shalfa/models"
	"shalfa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service drives the concierge chat widget.
type Service interface {
	CreateSession(ctx context.Context, lang i18n.Language) (*models.ChatSession, error)
	GetSession(ctx context.Context, id string) (*models.ChatSession, error)
	Send(ctx context.Context, id string, text string) (*models.ChatSession, error)
	SetOpen(ctx context.Context, id string, open bool) (*models.ChatSession, error)
}

// DefaultService is the production implementation. A nil Completer puts
// the whole widget into degraded mode: sends still record the user's
// message and answer with the unavailability notice, with no network I/O.
type DefaultService struct {
	Store     TranscriptStore
	Completer Completer
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateSession opens a transcript seeded with the localized greeting.
func (s *DefaultService) CreateSession(ctx context.Context, lang i18n.Language) (*models.ChatSession, error) {
	now := s.now()
	sess := &models.ChatSession{
		ID:       uuid.NewString(),
		Language: lang,
		Messages: []models.ChatMessage{{
			ID:        uuid.NewString(),
			Role:      models.RoleAssistant,
			Text:      Greeting(lang),
			Timestamp: now,
		}},
		CreatedAt: now,
	}
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultService) GetSession(ctx context.Context, id string) (*models.ChatSession, error) {
	return s.load(ctx, id)
}

// Send appends the user's message, asks the completer with the transcript
// as it stood BEFORE that message, and appends the reply. Blank input is
// a no-op. Sends are serialized per session via the InFlight flag; a
// concurrent send gets a busy error. The completer never aborts the
// exchange: its failures become canned replies, so the only way a user
// message is left dangling is a store failure after the append.
func (s *DefaultService) Send(ctx context.Context, id string, text string) (*models.ChatSession, error) {
	text = strings.TrimSpace(text)

	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return sess, nil
	}
	if sess.InFlight {
		return nil, NewSessionBusyError(id)
	}

	history := append([]models.ChatMessage(nil), sess.Messages...)

	sess.Messages = append(sess.Messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Text:      text,
		Timestamp: s.now(),
	})
	sess.InFlight = true
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, err
	}

	reply := s.reply(ctx, history, text, sess.Language)

	sess.Messages = append(sess.Messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Text:      reply,
		Timestamp: s.now(),
	})
	sess.InFlight = false
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultService) reply(ctx context.Context, history []models.ChatMessage, text string, lang i18n.Language) string {
	if s.Completer == nil {
		return replyUnavailable
	}
	out, err := s.Completer.Complete(ctx, history, text, lang)
	if err != nil {
		utils.GetLogger().Error("concierge completion failed", zap.Error(err))
		return replyError
	}
	if out == "" {
		return replyEmpty
	}
	return out
}

// SetOpen records the panel's open/closed state.
func (s *DefaultService) SetOpen(ctx context.Context, id string, open bool) (*models.ChatSession, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Open = open
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultService) load(ctx context.Context, id string) (*models.ChatSession, error) {
	sess, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, NewSessionNotFoundError(id)
	}
	return sess, nil
}
