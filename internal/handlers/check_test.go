package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"scamcheck/backend/internal/history"
	"scamcheck/backend/internal/models"
	"scamcheck/backend/internal/realtime"
	"scamcheck/backend/internal/scam"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	checker := scam.NewChecker(scam.Options{
		ForceOffline: true,
		Quota:        &scam.QuotaState{},
		Lookup:       func(string) string { return "" },
	})
	service := scam.NewService(checker, nil, nil, nil, history.New(10))
	return NewAPI(service, nil, nil, nil, "", zerolog.Nop())
}

func TestCheckMessageScamVerdict(t *testing.T) {
	api := newTestAPI(t)

	body := `{"message": "WIN A FREE PRIZE!!! Click http://bit.ly/x now, verify your account"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/check", strings.NewReader(body))
	w := httptest.NewRecorder()
	api.CheckMessage(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var record models.CheckRecord
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !record.Result.IsScam {
		t.Fatalf("expected scam verdict, got %+v", record.Result)
	}
	if record.Source != "heuristic" {
		t.Fatalf("expected heuristic source, got %s", record.Source)
	}
	if record.ID == "" {
		t.Fatal("expected record id")
	}
}

func TestCheckMessageRejectsBlank(t *testing.T) {
	api := newTestAPI(t)

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/check", strings.NewReader(body))
		w := httptest.NewRecorder()
		api.CheckMessage(w, r)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, w.Code)
		}
	}
}

func TestCheckMessageRejectsOversized(t *testing.T) {
	api := newTestAPI(t)

	body := `{"message": "` + strings.Repeat("a", maxMessageLength+1) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/check", strings.NewReader(body))
	w := httptest.NewRecorder()
	api.CheckMessage(w, r)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCheckMessageRejectsUnknownFields(t *testing.T) {
	api := newTestAPI(t)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/check", strings.NewReader(`{"message": "hi", "admin": true}`))
	w := httptest.NewRecorder()
	api.CheckMessage(w, r)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	api := newTestAPI(t)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/check", strings.NewReader(`{"message": "lunch tomorrow?"}`))
	api.CheckMessage(httptest.NewRecorder(), r)

	w := httptest.NewRecorder()
	api.ListHistory(w, httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))
	var listing struct {
		Data []models.CheckRecord `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if len(listing.Data) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(listing.Data))
	}

	api.ClearHistory(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/v1/history", nil))

	w = httptest.NewRecorder()
	api.ListHistory(w, httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))
	listing.Data = nil
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if len(listing.Data) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(listing.Data))
	}
}

func TestResetQuotaEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.Service.Checker.Quota().MarkExceeded()

	w := httptest.NewRecorder()
	api.ResetQuota(w, httptest.NewRequest(http.MethodPost, "/api/v1/quota/reset", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if api.Service.Checker.Quota().Exceeded() {
		t.Fatal("expected quota flag cleared")
	}
}

func TestHealthReportsRealtimeClients(t *testing.T) {
	api := newTestAPI(t)
	api.Hub = realtime.NewHub()

	w := httptest.NewRecorder()
	api.Health(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode health: %v", err)
	}
	count, ok := payload["realtime_clients"].(float64)
	if !ok {
		t.Fatalf("expected realtime_clients in payload: %v", payload)
	}
	if count != 0 {
		t.Fatalf("expected 0 connected clients, got %v", count)
	}
}

func TestGetConfigMasksKey(t *testing.T) {
	checker := scam.NewChecker(scam.Options{
		APIKey:       "sk-secret",
		ForceOffline: true,
		Quota:        &scam.QuotaState{},
	})
	service := scam.NewService(checker, nil, nil, nil, history.New(10))
	api := NewAPI(service, nil, nil, nil, "", zerolog.Nop())

	w := httptest.NewRecorder()
	api.GetConfig(w, httptest.NewRequest(http.MethodGet, "/api/v1/config", nil))

	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode config: %v", err)
	}
	if payload["api_key"] != "****" {
		t.Fatalf("expected masked key, got %v", payload["api_key"])
	}
	if payload["model"] != scam.DefaultModel {
		t.Fatalf("expected default model, got %v", payload["model"])
	}
}
