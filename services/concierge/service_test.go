package concierge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"shalfa/i18n"
	"shalfa/models"
)

// fakeCompleter records what it was asked and answers with a canned reply.
type fakeCompleter struct {
	history []models.ChatMessage
	message string
	reply   string
	err     error
}

func (f *fakeCompleter) Complete(ctx context.Context, history []models.ChatMessage, message string, lang i18n.Language) (string, error) {
	f.history = append([]models.ChatMessage(nil), history...)
	f.message = message
	return f.reply, f.err
}

func newTestService(completer Completer) *DefaultService {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return &DefaultService{
		Store:     NewMemoryTranscriptStore(),
		Completer: completer,
		Now:       func() time.Time { return now },
	}
}

func TestCreateSessionSeedsGreeting(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	tests := []struct {
		lang i18n.Language
		want string
	}{
		{i18n.Portuguese, "Olá. Sou o Concierge Virtual"},
		{i18n.English, "Hello. I am the Virtual Concierge"},
		{i18n.Spanish, "Hola. Soy el Conserje Virtual"},
	}

	for _, tt := range tests {
		sess, err := svc.CreateSession(ctx, tt.lang)
		if err != nil {
			t.Fatalf("CreateSession(%s): %v", tt.lang, err)
		}
		if len(sess.Messages) != 1 {
			t.Fatalf("len(Messages) = %d, want 1", len(sess.Messages))
		}
		first := sess.Messages[0]
		if first.Role != models.RoleAssistant {
			t.Errorf("greeting role = %q, want assistant", first.Role)
		}
		if !strings.HasPrefix(first.Text, tt.want) {
			t.Errorf("greeting %q does not start with %q", first.Text, tt.want)
		}
	}
}

func TestSendAppendsExchange(t *testing.T) {
	completer := &fakeCompleter{reply: "• Estúdio Gourmet, cozinha completa."}
	svc := newTestService(completer)
	ctx := context.Background()

	sess, _ := svc.CreateSession(ctx, i18n.Portuguese)

	sess, err := svc.Send(ctx, sess.ID, "Quais quartos têm cozinha?")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if len(sess.Messages) != 3 {
		t.Fatalf("len(Messages) = %d, want 3", len(sess.Messages))
	}
	if sess.Messages[1].Role != models.RoleUser || sess.Messages[1].Text != "Quais quartos têm cozinha?" {
		t.Errorf("unexpected user message: %+v", sess.Messages[1])
	}
	if sess.Messages[2].Role != models.RoleAssistant || sess.Messages[2].Text != completer.reply {
		t.Errorf("unexpected assistant message: %+v", sess.Messages[2])
	}
	if sess.InFlight {
		t.Error("InFlight must be cleared after the exchange")
	}

	// The completer sees the transcript as it stood before the new user
	// message, never the message twice.
	if len(completer.history) != 1 {
		t.Fatalf("completer history length = %d, want 1 (greeting only)", len(completer.history))
	}
	if completer.history[0].Role != models.RoleAssistant {
		t.Errorf("history[0].Role = %q, want assistant", completer.history[0].Role)
	}
	if completer.message != "Quais quartos têm cozinha?" {
		t.Errorf("completer message = %q", completer.message)
	}
}

func TestSendGrowsByTwoPerExchange(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := newTestService(completer)
	ctx := context.Background()

	sess, _ := svc.CreateSession(ctx, i18n.Portuguese)
	for i := 1; i <= 3; i++ {
		var err error
		sess, err = svc.Send(ctx, sess.ID, "pergunta")
		if err != nil {
			t.Fatalf("Send %d: %v", i, err)
		}
		if want := 1 + 2*i; len(sess.Messages) != want {
			t.Fatalf("after %d sends len(Messages) = %d, want %d", i, len(sess.Messages), want)
		}
	}
	// Last exchange's history: greeting plus two full prior exchanges.
	if len(completer.history) != 5 {
		t.Errorf("completer history length = %d, want 5", len(completer.history))
	}
}

func TestSendBlankIsNoOp(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	svc := newTestService(completer)
	ctx := context.Background()

	sess, _ := svc.CreateSession(ctx, i18n.Portuguese)
	sess, err := svc.Send(ctx, sess.ID, "   \n\t ")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(sess.Messages) != 1 {
		t.Errorf("len(Messages) = %d, want 1 (blank input must not append)", len(sess.Messages))
	}
	if completer.message != "" {
		t.Errorf("completer was called with %q", completer.message)
	}
}

func TestSendDegradedReplies(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		completer Completer
		want      string
	}{
		{"no completer", nil, replyUnavailable},
		{"completer error", &fakeCompleter{err: errors.New("boom")}, replyError},
		{"empty reply", &fakeCompleter{reply: ""}, replyEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.completer)
			sess, _ := svc.CreateSession(ctx, i18n.Portuguese)
			sess, err := svc.Send(ctx, sess.ID, "oi")
			if err != nil {
				t.Fatalf("Send: %v", err)
			}
			if len(sess.Messages) != 3 {
				t.Fatalf("len(Messages) = %d, want 3", len(sess.Messages))
			}
			if got := sess.Messages[2].Text; got != tt.want {
				t.Errorf("reply = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSendWhileInFlight(t *testing.T) {
	svc := newTestService(&fakeCompleter{reply: "ok"})
	ctx := context.Background()

	sess, _ := svc.CreateSession(ctx, i18n.Portuguese)
	sess.InFlight = true
	if err := svc.Store.Set(ctx, sess); err != nil {
		t.Fatalf("Set: %v", err)
	}

	_, err := svc.Send(ctx, sess.ID, "oi")
	var sessErr *SessionError
	if !errors.As(err, &sessErr) || sessErr.Code != "sessionBusy" {
		t.Fatalf("expected sessionBusy, got %v", err)
	}
}

func TestSetOpen(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	sess, _ := svc.CreateSession(ctx, i18n.Portuguese)
	sess, err := svc.SetOpen(ctx, sess.ID, true)
	if err != nil {
		t.Fatalf("SetOpen: %v", err)
	}
	if !sess.Open {
		t.Error("Open = false, want true")
	}
	sess, _ = svc.SetOpen(ctx, sess.ID, false)
	if sess.Open {
		t.Error("Open = true, want false")
	}
}

func TestSessionNotFound(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.GetSession(context.Background(), "nope")
	var sessErr *SessionError
	if !errors.As(err, &sessErr) || sessErr.Code != "sessionNotFound" {
		t.Fatalf("expected sessionNotFound, got %v", err)
	}
}
