package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"askai-gateway/internal/handlers"
	"askai-gateway/internal/middleware"
	"askai-gateway/internal/models"
	"askai-gateway/internal/repository"
	"askai-gateway/internal/services"
)

type echoChat struct{}

func (echoChat) Name() string { return "echo" }

func (echoChat) Complete(ctx context.Context, messages []models.ChatMessage, temperature float64) (string, error) {
	return "Paris", nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := repository.NewFileAudioStore(t.TempDir())
	svc := services.NewAskService(echoChat{}, services.NewTranslateSpeech("http://127.0.0.1:0", nil), store)
	return New(
		middleware.NewBearerAuth("s3cret"),
		handlers.NewAskHandler(svc, "", false, false, 0),
		handlers.NewAudioHandler(store, false),
	)
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != `{"status":"ok"}` {
		t.Fatalf("unexpected health response %d %q", rr.Code, rr.Body.String())
	}
}

func TestRouter_AskRequiresBearer(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong token", "Bearer other", http.StatusUnauthorized},
		{"wrong scheme", "Token s3cret", http.StatusUnauthorized},
		{"valid", "Bearer s3cret", http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"question":"capital of France","context":""}`))
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rr.Code)
			}

			var body map[string]interface{}
			json.NewDecoder(rr.Body).Decode(&body)
			if tc.status == http.StatusUnauthorized && body["error"] != "Invalid token" {
				t.Errorf("unexpected body %v", body)
			}
			if tc.status == http.StatusOK && body["response"] != "Paris" {
				t.Errorf("unexpected body %v", body)
			}
		})
	}
}

func TestRouter_AudioIsPublic(t *testing.T) {
	r := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/audio/nonexistent.mp3", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	if body["error"] != "File not found" {
		t.Errorf("unexpected body %v", body)
	}
}
