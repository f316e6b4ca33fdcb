// Package wiki fetches supporting facts from the Wikipedia search API.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/seoscribe/seoscribe/internal/model"
	"github.com/seoscribe/seoscribe/internal/seo/textutil"
)

// DefaultResultsLimit is the number of search hits retained per keyword.
const DefaultResultsLimit = 5

// Config configures the Wikipedia client.
type Config struct {
	APIURL     string
	Timeout    time.Duration
	MaxRetries int
}

// Client searches Wikipedia and scores results against the keyword.
type Client struct {
	apiURL     string
	maxRetries int
	httpClient *http.Client
}

// NewClient creates a Wikipedia search client.
func NewClient(cfg Config) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = "https://en.wikipedia.org/w/api.php"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	return &Client{
		apiURL:     cfg.APIURL,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

// Search returns up to limit results sorted by relevance score, highest
// first. Transient failures are retried with exponential backoff.
func (c *Client) Search(ctx context.Context, keyword string, limit int) ([]model.WikipediaResult, error) {
	if limit <= 0 {
		limit = DefaultResultsLimit
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", keyword)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("srprop", "snippet|titlesnippet")

	requestURL := c.apiURL + "?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		results, err := c.doSearch(ctx, requestURL, keyword)
		if err == nil {
			return results, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("wikipedia search failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *Client) doSearch(ctx context.Context, requestURL, keyword string) ([]model.WikipediaResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]model.WikipediaResult, 0, len(parsed.Query.Search))
	for _, page := range parsed.Query.Search {
		snippet := textutil.Clean(page.Snippet)
		results = append(results, model.WikipediaResult{
			Title:          page.Title,
			Snippet:        snippet,
			URL:            "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(page.Title, " ", "_"),
			RelevanceScore: relevanceScore(keyword, page.Title, snippet),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	return results, nil
}

// relevanceScore weighs title similarity heaviest, then snippet
// similarity, with a small bonus for exact keyword occurrences.
func relevanceScore(keyword, title, snippet string) float64 {
	keywordLower := strings.ToLower(keyword)
	titleLower := strings.ToLower(title)
	snippetLower := strings.ToLower(snippet)

	score := textutil.JaccardSimilarity(keywordLower, titleLower) * 0.6
	score += textutil.JaccardSimilarity(keywordLower, snippetLower) * 0.3

	exactMatches := strings.Count(titleLower, keywordLower) + strings.Count(snippetLower, keywordLower)
	score += min(float64(exactMatches)*0.1, 0.1)

	return min(score, 1.0)
}
