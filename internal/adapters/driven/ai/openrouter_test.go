package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func completionServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *OpenRouterCompleter) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	completer, err := NewOpenRouterCompleter(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv, completer
}

func TestNewOpenRouterCompleter_RequiresKey(t *testing.T) {
	if _, err := NewOpenRouterCompleter(Config{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}
}

func TestNewOpenRouterCompleter_Defaults(t *testing.T) {
	c, err := NewOpenRouterCompleter(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != defaultModel {
		t.Errorf("expected default model %s, got %s", defaultModel, c.Model())
	}
	if c.httpClient.Timeout != defaultTimeout {
		t.Errorf("expected default timeout %v, got %v", defaultTimeout, c.httpClient.Timeout)
	}
}

func TestComplete(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	_, completer := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "cmpl-1",
			"object":  "chat.completion",
			"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": "### Overview\nLooks good."}}},
		})
	})

	text, err := completer.Complete(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "### Overview\nLooks good." {
		t.Errorf("unexpected text %q", text)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("missing bearer auth, got %q", gotAuth)
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system+user messages, got %v", gotBody["messages"])
	}
}

func TestComplete_ErrorResponse(t *testing.T) {
	_, completer := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	})

	if _, err := completer.Complete(context.Background(), "s", "p"); err == nil {
		t.Fatalf("expected error from failing endpoint")
	}
}

func TestComplete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	completer, err := NewOpenRouterCompleter(Config{APIKey: "k", BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := completer.Complete(context.Background(), "s", "p"); err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestPing(t *testing.T) {
	_, completer := completionServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"role": "assistant", "content": "ok"}}},
		})
	})
	if err := completer.Ping(context.Background()); err != nil {
		t.Errorf("unexpected ping error: %v", err)
	}
}
