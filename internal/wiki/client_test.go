package wiki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const searchPayload = `{
	"query": {
		"search": [
			{"title": "Cooking", "snippet": "An <span class=\"searchmatch\">unrelated</span> topic entirely"},
			{"title": "Machine learning", "snippet": "<span class=\"searchmatch\">Machine learning</span> is a field of study"}
		]
	}
}`

func TestClient_Search(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "query" || q.Get("list") != "search" {
			t.Errorf("unexpected query params: %v", q)
		}
		if q.Get("srsearch") != "machine learning" {
			t.Errorf("expected keyword in srsearch, got %q", q.Get("srsearch"))
		}
		if q.Get("srprop") != "snippet|titlesnippet" {
			t.Errorf("unexpected srprop: %q", q.Get("srprop"))
		}
		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := NewClient(Config{APIURL: server.URL, Timeout: 2 * time.Second})

	results, err := client.Search(context.Background(), "machine learning", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// The on-topic page should be scored and sorted first.
	if results[0].Title != "Machine learning" {
		t.Errorf("expected most relevant result first, got %q", results[0].Title)
	}
	if results[0].RelevanceScore <= results[1].RelevanceScore {
		t.Errorf("expected descending scores, got %f then %f",
			results[0].RelevanceScore, results[1].RelevanceScore)
	}
	if results[0].URL != "https://en.wikipedia.org/wiki/Machine_learning" {
		t.Errorf("unexpected URL: %s", results[0].URL)
	}

	// Snippets should come back without markup.
	for _, r := range results {
		for _, tag := range []string{"<span", "</span>"} {
			if strings.Contains(r.Snippet, tag) {
				t.Errorf("snippet still contains %q: %s", tag, r.Snippet)
			}
		}
	}
}

func TestClient_SearchRetriesOnFailure(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := NewClient(Config{APIURL: server.URL, Timeout: 2 * time.Second, MaxRetries: 2})

	results, err := client.Search(context.Background(), "machine learning", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results after retry, got %d", len(results))
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestClient_SearchGivesUp(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{APIURL: server.URL, Timeout: time.Second, MaxRetries: 1})

	if _, err := client.Search(context.Background(), "anything", 5); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
}

func TestRelevanceScore(t *testing.T) {
	t.Parallel()

	exact := relevanceScore("machine learning", "Machine learning", "Machine learning is a field")
	unrelated := relevanceScore("machine learning", "Cooking", "Recipes and food preparation")

	if exact <= unrelated {
		t.Errorf("exact match score %f should beat unrelated %f", exact, unrelated)
	}
	if exact > 1.0 {
		t.Errorf("score should be capped at 1.0, got %f", exact)
	}
	if unrelated != 0.0 {
		t.Errorf("fully unrelated result should score 0, got %f", unrelated)
	}
}
