package seo

import (
	"context"
	"log/slog"
	"time"

	"github.com/seoscribe/seoscribe/internal/model"
)

// Searcher fetches scored Wikipedia results for a keyword.
type Searcher interface {
	Search(ctx context.Context, keyword string, limit int) ([]model.WikipediaResult, error)
}

// Retriever builds the full SEOContext for a keyword: external facts
// plus heuristic enrichment and intent classification.
type Retriever struct {
	searcher     Searcher
	resultsLimit int
	logger       *slog.Logger
}

// NewRetriever creates a retriever over the given search backend.
func NewRetriever(searcher Searcher, resultsLimit int, logger *slog.Logger) *Retriever {
	if resultsLimit <= 0 {
		resultsLimit = 5
	}
	return &Retriever{
		searcher:     searcher,
		resultsLimit: resultsLimit,
		logger:       logger,
	}
}

// BuildContext gathers everything known about the keyword. A failed
// search degrades to heuristics-only enrichment rather than failing
// the request.
func (r *Retriever) BuildContext(ctx context.Context, keyword, userGoal string) *model.SEOContext {
	start := time.Now()

	results, err := r.searcher.Search(ctx, keyword, r.resultsLimit)
	if err != nil {
		r.logger.Warn("wikipedia search failed, continuing without external facts",
			slog.String("keyword", keyword),
			slog.String("error", err.Error()),
		)
		results = nil
	}

	intent, explanation := ClassifyIntent(keyword)

	seoCtx := &model.SEOContext{
		Keyword:              keyword,
		UserGoal:             userGoal,
		SearchIntent:         intent,
		IntentExplanation:    explanation,
		RelatedKeywords:      RelatedKeywords(keyword, results),
		WikipediaData:        results,
		ContentOpportunities: ContentOpportunities(keyword, results),
		CompetitiveLandscape: "Medium difficulty - requires quality content and proper optimization",
		UserQuestions:        UserQuestions(keyword, results),
		RetrievedAt:          time.Now(),
	}

	r.logger.Info("context built",
		slog.String("keyword", keyword),
		slog.String("intent", string(intent)),
		slog.Int("wikipedia_results", len(results)),
		slog.Duration("duration", time.Since(start)),
	)

	return seoCtx
}
