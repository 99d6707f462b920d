package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"askai-gateway/internal/models"
)

func TestOpenAIChat_Complete(t *testing.T) {
	var got openAIChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("unexpected authorization header %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Paris"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIChat("sk-test", srv.URL+"/", "gpt-3.5-turbo", srv.Client())
	text, err := c.Complete(context.Background(), BuildMessages("request: capital of France", ""), 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Paris" {
		t.Errorf("expected Paris, got %q", text)
	}

	if got.Model != "gpt-3.5-turbo" || got.Temperature != 0.5 {
		t.Errorf("unexpected model/temperature: %q %v", got.Model, got.Temperature)
	}
	if len(got.Messages) != 3 || got.Messages[0].Role != "system" {
		t.Errorf("unexpected messages: %+v", got.Messages)
	}
}

func TestOpenAIChat_ErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIChat("bad", srv.URL, "gpt-3.5-turbo", srv.Client())
	_, err := c.Complete(context.Background(), []models.ChatMessage{{Role: "user", Content: "hi"}}, 0.5)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Incorrect API key provided") || !strings.Contains(err.Error(), "401") {
		t.Errorf("unexpected error message %q", err.Error())
	}
}

func TestOpenAIChat_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAIChat("sk", srv.URL, "m", srv.Client())
	if _, err := c.Complete(context.Background(), nil, 0.5); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestOpenAIChat_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewOpenAIChat("sk", url, "m", nil)
	if _, err := c.Complete(context.Background(), nil, 0.5); err == nil {
		t.Fatal("expected error when provider is unreachable")
	}
}
