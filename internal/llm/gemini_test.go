package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func completionResponse(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func newTestClient(serverURL string, maxRetries int) *GeminiClient {
	return NewGeminiClient(GeminiConfig{
		APIKey:     "test-key",
		BaseURL:    serverURL,
		Model:      "test-model",
		Timeout:    2 * time.Second,
		MaxRetries: maxRetries,
	})
}

func TestGeminiClient_Generate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "models/test-model:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected key in query, got %q", r.URL.Query().Get("key"))
		}

		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "write a title" {
			t.Errorf("unexpected request contents: %+v", req.Contents)
		}

		w.Write([]byte(completionResponse("A Great Title")))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	got, err := client.Generate(context.Background(), "write a title")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "A Great Title" {
		t.Errorf("expected 'A Great Title', got %q", got)
	}
}

func TestGeminiClient_RetriesOnRateLimit(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(completionResponse("recovered")))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)

	got, err := client.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "recovered" {
		t.Errorf("expected 'recovered', got %q", got)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestGeminiClient_FailsFastOnBadRequest(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"bad prompt"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)

	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("expected no retries on 400, got %d calls", calls)
	}
}

func TestGeminiClient_ExhaustsRetriesOnServerError(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)

	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("expected 3 calls (1 + 2 retries), got %d", calls)
	}
}

func TestGeminiClient_NotConfigured(t *testing.T) {
	t.Parallel()

	client := NewGeminiClient(GeminiConfig{})

	if _, err := client.Generate(context.Background(), "prompt"); err != ErrNotConfigured {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGeminiClient_EmptyCompletion(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)

	if _, err := client.Generate(context.Background(), "prompt"); err != ErrEmptyCompletion {
		t.Errorf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestNextRetryDelay_Bounds(t *testing.T) {
	t.Parallel()

	for attempt := -1; attempt < 6; attempt++ {
		d := NextRetryDelay(attempt)
		if d < 300*time.Millisecond || d > 3*time.Second {
			t.Errorf("attempt %d: delay %s outside expected bounds", attempt, d)
		}
	}
}
