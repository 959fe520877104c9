package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"shalfa/handlers"
	"shalfa/i18n"
	"shalfa/models"
	"shalfa/routes"
	"shalfa/services/booking"
	"shalfa/services/concierge"
	"shalfa/services/prefs"

	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	bundle := i18n.NewBundle()
	hb := &handlers.HandlerBundle{
		Bundle: bundle,
		Booking: &booking.DefaultSessionService{
			Store:      booking.NewMemoryDraftStore(),
			Validator:  booking.NewValidator(bundle, zap.NewNop()),
			EngineBase: "https://jomaa.stays.net",
		},
		Concierge: &concierge.DefaultService{
			Store: concierge.NewMemoryTranscriptStore(),
		},
		Prefs: &prefs.DefaultService{Store: prefs.NewMemoryStore()},
	}

	r := gin.New()
	routes.RegisterRoutes(r, hb)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetRoomsLocalized(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/content/rooms?lang=en", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Standard Couple Suite") {
		t.Errorf("response not localized: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/content/rooms/penthouse", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown room status = %d, want 404", w.Code)
	}
}

func TestGetTranslations(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/i18n/en", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Language string            `json:"language"`
		Strings  map[string]string `json:"strings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Strings["booking.err_required"] != "Required" {
		t.Errorf("strings[booking.err_required] = %q", resp.Strings["booking.err_required"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/i18n/fr", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unsupported language status = %d, want 404", w.Code)
	}
}

func TestPriceSearch(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/content/price-search?q=iphone", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "comprasparaguai.com.br/busca/?q=iphone") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/content/price-search", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing query status = %d, want 400", w.Code)
	}
}

func TestBookingFlowOverHTTP(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", `{"language":"pt"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("start status = %d, body = %s", w.Code, w.Body.String())
	}
	var view struct {
		Session models.BookingSession `json:"session"`
		Rooms   []json.RawMessage     `json:"rooms"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Session.ID == "" {
		t.Fatal("no session id")
	}
	if len(view.Rooms) != 8 {
		t.Errorf("len(rooms) = %d, want 8", len(view.Rooms))
	}
	id := view.Session.ID

	w = doJSON(t, r, http.MethodPatch, "/api/booking/session/"+id, `{"guests":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}

	// Submitting the incomplete draft is rejected wholesale.
	w = doJSON(t, r, http.MethodPost, "/api/booking/session/"+id+"/submit", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("submit status = %d, want 422", w.Code)
	}
	var result struct {
		Submitted bool              `json:"submitted"`
		Errors    map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Submitted || len(result.Errors) == 0 {
		t.Errorf("unexpected submit result: %+v", result)
	}

	w = doJSON(t, r, http.MethodGet, "/api/booking/session/unknown", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", w.Code)
	}
}

func TestConciergeOverHTTP(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/concierge/session", `{"language":"en"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("start status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Session     models.ChatSession `json:"session"`
		Suggestions []string           `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Session.Messages) != 1 || !strings.HasPrefix(resp.Session.Messages[0].Text, "Hello.") {
		t.Errorf("unexpected greeting: %+v", resp.Session.Messages)
	}
	if len(resp.Suggestions) == 0 {
		t.Error("no suggestions")
	}

	// No completer configured: the widget degrades but still answers.
	w = doJSON(t, r, http.MethodPost, "/api/concierge/session/"+resp.Session.ID+"/message", `{"text":"oi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("send status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "temporariamente indisponível") {
		t.Errorf("expected the degraded reply, got %s", w.Body.String())
	}
}

func TestTooltipOverHTTP(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/concierge/tooltip?clientId=c1&elapsedMs=16000", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"shown"`) {
		t.Errorf("state = %s, want shown", w.Body.String())
	}

	// Dismissal is read from preferences.
	w = doJSON(t, r, http.MethodPatch, "/api/prefs/c1", `{"tooltipDismissed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("prefs status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/concierge/tooltip?clientId=c1&elapsedMs=16000", "")
	if !strings.Contains(w.Body.String(), `"dismissed"`) {
		t.Errorf("state = %s, want dismissed", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/concierge/tooltip?elapsedMs=16000", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing clientId status = %d, want 400", w.Code)
	}
}

func TestPreferencesOverHTTP(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/prefs/fresh", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"language":"pt"`) {
		t.Errorf("unexpected defaults: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, "/api/prefs/fresh", `{"language":"es","theme":"dark"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"language":"es"`) || !strings.Contains(w.Body.String(), `"theme":"dark"`) {
		t.Errorf("update not applied: %s", w.Body.String())
	}
}
