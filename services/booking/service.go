package booking

import (
	"context"
	"time"

	"shalfa/catalog"
	"shalfa/i18n"
	"shalfa/models"
	"shalfa/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DraftUpdate carries partial field edits; nil fields are untouched.
// Guest-count and kitchen-preference edits are filter changes and trigger
// reconciliation of the current selection.
type DraftUpdate struct {
	Name        *string                   `json:"name"`
	Document    *string                   `json:"document"`
	Phone       *string                   `json:"phone"`
	CheckIn     *string                   `json:"checkIn"`
	CheckOut    *string                   `json:"checkOut"`
	Guests      *int                      `json:"guests"`
	KitchenPref *models.KitchenPreference `json:"kitchenPref"`
}

// SessionView is what every session operation returns: the session, the
// rooms available under its current filters, and the derived quote.
type SessionView struct {
	Session *models.BookingSession `json:"session"`
	Rooms   []catalog.Room         `json:"rooms"`
	Quote   models.Quote           `json:"quote"`
}

// SubmitResult reports a submit attempt. Errors is non-empty (or the room
// is missing) when submission was blocked; RedirectURL is set only on
// success.
type SubmitResult struct {
	Submitted   bool                    `json:"submitted"`
	Errors      models.ValidationErrors `json:"errors,omitempty"`
	RedirectURL string                  `json:"redirectUrl,omitempty"`
	Session     *models.BookingSession  `json:"session"`
}

// SessionService drives the booking intake flow.
type SessionService interface {
	CreateSession(ctx context.Context, lang i18n.Language, preselectRoomID string) (*SessionView, error)
	GetSession(ctx context.Context, id string) (*SessionView, error)
	UpdateSession(ctx context.Context, id string, upd DraftUpdate) (*SessionView, error)
	ToggleRoom(ctx context.Context, id string, roomID string) (*SessionView, error)
	Submit(ctx context.Context, id string) (*SubmitResult, error)
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Store      DraftStore
	Validator  *Validator
	EngineBase string
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// defaultGuests matches the form's initial guest count.
const defaultGuests = 2

const (
	minGuests = 1
	maxGuests = 6
)

func clampGuests(n int) int {
	if n < minGuests {
		return minGuests
	}
	if n > maxGuests {
		return maxGuests
	}
	return n
}

// CreateSession starts a draft. A non-empty preselectRoomID is an external
// preselection (arriving from the room browsing view): it seeds the guest
// count from the room's capacity and the kitchen preference from its
// kitchen presence. In-form toggles never re-seed (see ToggleRoom).
func (s *DefaultSessionService) CreateSession(ctx context.Context, lang i18n.Language, preselectRoomID string) (*SessionView, error) {
	draft := models.BookingDraft{
		Guests:      defaultGuests,
		KitchenPref: models.KitchenAny,
	}

	if preselectRoomID != "" {
		room, ok := catalog.RoomByID(preselectRoomID)
		if !ok {
			return nil, NewRoomNotFoundError(preselectRoomID)
		}
		draft.RoomID = room.ID
		draft.Guests = clampGuests(room.Capacity)
		if room.HasKitchen() {
			draft.KitchenPref = models.KitchenRequired
		} else {
			draft.KitchenPref = models.KitchenAny
		}
	}

	now := s.now()
	sess := &models.BookingSession{
		ID:        uuid.NewString(),
		Language:  lang,
		Draft:     draft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.reconcile(&sess.Draft)
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("booking session created",
		zap.String("sessionID", sess.ID), zap.String("preselect", preselectRoomID))
	return s.view(sess), nil
}

func (s *DefaultSessionService) GetSession(ctx context.Context, id string) (*SessionView, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// UpdateSession applies field edits. Reconciliation runs synchronously
// after every mutation, so the response never shows a selection that the
// active filters exclude.
func (s *DefaultSessionService) UpdateSession(ctx context.Context, id string, upd DraftUpdate) (*SessionView, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &sess.Draft
	if upd.Name != nil {
		d.Name = *upd.Name
	}
	if upd.Document != nil {
		d.Document = *upd.Document
	}
	if upd.Phone != nil {
		d.Phone = *upd.Phone
	}
	if upd.CheckIn != nil {
		d.CheckIn = *upd.CheckIn
	}
	if upd.CheckOut != nil {
		d.CheckOut = *upd.CheckOut
	}
	if upd.Guests != nil {
		d.Guests = clampGuests(*upd.Guests)
	}
	if upd.KitchenPref != nil && upd.KitchenPref.Valid() {
		d.KitchenPref = *upd.KitchenPref
	}

	s.reconcile(d)
	sess.UpdatedAt = s.now()
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// ToggleRoom selects a room, or deselects it when it is already the
// current selection. Unlike external preselection, an in-form toggle
// leaves guest count and kitchen preference alone.
func (s *DefaultSessionService) ToggleRoom(ctx context.Context, id string, roomID string) (*SessionView, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if sess.Draft.RoomID == roomID {
		sess.Draft.RoomID = ""
	} else {
		room, ok := catalog.RoomByID(roomID)
		if !ok {
			return nil, NewRoomNotFoundError(roomID)
		}
		sess.Draft.RoomID = room.ID
	}

	s.reconcile(&sess.Draft)
	sess.UpdatedAt = s.now()
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// Submit runs the full validation pass. On success it marks the session
// and returns the external engine URL; on failure it returns every field
// error at once and performs no side effects. A missing room selection
// blocks submission without a field message.
func (s *DefaultSessionService) Submit(ctx context.Context, id string) (*SubmitResult, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Submitted {
		return nil, NewAlreadySubmittedError(id)
	}

	errs := s.Validator.ValidateDraft(sess.Draft, s.now(), sess.Language)
	if len(errs) > 0 || sess.Draft.RoomID == "" {
		return &SubmitResult{Submitted: false, Errors: errs, Session: sess}, nil
	}

	sess.Submitted = true
	sess.UpdatedAt = s.now()
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, err
	}

	redirect := BuildEngineURL(s.EngineBase, sess.Draft)
	utils.GetLogger().Info("booking submitted",
		zap.String("sessionID", sess.ID),
		zap.String("roomID", sess.Draft.RoomID),
		zap.String("checkIn", sess.Draft.CheckIn),
		zap.String("checkOut", sess.Draft.CheckOut))
	return &SubmitResult{Submitted: true, RedirectURL: redirect, Session: sess}, nil
}

// reconcile clears a selection the active filters exclude. The check uses
// the bare predicate, not the sticky-inclusive filter: stickiness keeps a
// room visible, it does not keep it selected.
func (s *DefaultSessionService) reconcile(d *models.BookingDraft) {
	if d.RoomID == "" {
		return
	}
	room, ok := catalog.RoomByID(d.RoomID)
	if !ok || !matchesFilters(room, d.Guests, d.KitchenPref) {
		d.RoomID = ""
	}
}

func (s *DefaultSessionService) load(ctx context.Context, id string) (*models.BookingSession, error) {
	sess, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, NewSessionNotFoundError(id)
	}
	return sess, nil
}

func (s *DefaultSessionService) view(sess *models.BookingSession) *SessionView {
	var room *catalog.Room
	if sess.Draft.RoomID != "" {
		if r, ok := catalog.RoomByID(sess.Draft.RoomID); ok {
			room = &r
		}
	}
	return &SessionView{
		Session: sess,
		Rooms:   FilterRooms(catalog.Rooms(), sess.Draft.Guests, sess.Draft.KitchenPref, sess.Draft.RoomID),
		Quote:   ComputeQuote(sess.Draft, room),
	}
}
