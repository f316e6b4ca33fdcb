package seo

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/seoscribe/seoscribe/internal/auth"
	"github.com/seoscribe/seoscribe/internal/cache"
	"github.com/seoscribe/seoscribe/internal/metrics"
	"github.com/seoscribe/seoscribe/internal/model"
)

// Pipeline sequences retrieval and generation, with a context cache in
// front of retrieval.
type Pipeline struct {
	retriever *Retriever
	generator *Generator
	cache     *cache.ContextCache
	recorder  metrics.Recorder
	logger    *slog.Logger

	analyses  atomic.Uint64
	briefs    atomic.Uint64
	articles  atomic.Uint64
	calendars atomic.Uint64
}

// NewPipeline wires the pipeline components together.
func NewPipeline(retriever *Retriever, generator *Generator, ctxCache *cache.ContextCache, recorder metrics.Recorder, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		retriever: retriever,
		generator: generator,
		cache:     ctxCache,
		recorder:  recorder,
		logger:    logger,
	}
}

// contextCacheKey derives the cache key from keyword and goal.
func contextCacheKey(keyword, userGoal string) string {
	return auth.QuickHash(keyword + "|" + userGoal)
}

// RetrieveContext returns the context for a keyword, from cache when
// fresh, otherwise built anew and cached.
func (p *Pipeline) RetrieveContext(ctx context.Context, keyword, userGoal string) *model.SEOContext {
	key := contextCacheKey(keyword, userGoal)

	if cached := p.cache.Get(key); cached != nil {
		p.recorder.IncContextCacheHit()
		p.logger.Debug("context cache hit", slog.String("keyword", keyword))
		return cached
	}
	p.recorder.IncContextCacheMiss()

	seoCtx := p.retriever.BuildContext(ctx, keyword, userGoal)
	p.cache.Set(key, seoCtx)

	return seoCtx
}

// AnalyzeKeyword runs retrieval only and returns the built context.
func (p *Pipeline) AnalyzeKeyword(ctx context.Context, keyword, userGoal string) *model.SEOContext {
	seoCtx := p.RetrieveContext(ctx, keyword, userGoal)
	p.analyses.Add(1)
	p.recorder.IncAnalysisGenerated()
	return seoCtx
}

// GenerateBrief runs the full retrieval + generation flow for one keyword.
func (p *Pipeline) GenerateBrief(ctx context.Context, keyword, userGoal string) *model.ContentBrief {
	start := time.Now()

	seoCtx := p.RetrieveContext(ctx, keyword, userGoal)
	brief := p.generator.GenerateBrief(ctx, seoCtx)

	p.briefs.Add(1)
	p.recorder.IncBriefGenerated()
	p.recorder.ObserveGenerationDuration(time.Since(start))

	return brief
}

// GenerateArticle produces a complete article for one keyword.
func (p *Pipeline) GenerateArticle(ctx context.Context, keyword, userGoal string) *model.FullArticle {
	start := time.Now()

	seoCtx := p.RetrieveContext(ctx, keyword, userGoal)
	article := p.generator.GenerateArticle(ctx, seoCtx, nil)

	p.articles.Add(1)
	p.recorder.IncArticleGenerated()
	p.recorder.ObserveGenerationDuration(time.Since(start))

	return article
}

// BulkItem is the outcome for one keyword in a bulk run.
type BulkItem struct {
	Keyword         string              `json:"keyword"`
	Status          string              `json:"status"`
	Title           string              `json:"title,omitempty"`
	WordCountTarget int                 `json:"word_count_target,omitempty"`
	Brief           *model.ContentBrief `json:"content_brief,omitempty"`
	Error           string              `json:"error,omitempty"`
}

// BulkSummary aggregates a bulk run: successful + failed always equals
// the number of submitted keywords.
type BulkSummary struct {
	Total       int        `json:"total"`
	Successful  int        `json:"successful"`
	Failed      int        `json:"failed"`
	SuccessRate float64    `json:"success_rate"`
	Results     []BulkItem `json:"results"`
}

// BulkProcess generates briefs for each keyword in turn. A failure on
// one keyword is recorded and the loop continues.
func (p *Pipeline) BulkProcess(ctx context.Context, keywords []string, userGoal string) *BulkSummary {
	summary := &BulkSummary{
		Total:   len(keywords),
		Results: make([]BulkItem, 0, len(keywords)),
	}

	for i, keyword := range keywords {
		p.logger.Info("bulk processing keyword",
			slog.Int("index", i+1),
			slog.Int("total", len(keywords)),
			slog.String("keyword", keyword),
		)

		if err := ctx.Err(); err != nil {
			summary.Failed++
			p.recorder.IncBulkItemProcessed("failed")
			summary.Results = append(summary.Results, BulkItem{
				Keyword: keyword,
				Status:  "failed",
				Error:   err.Error(),
			})
			continue
		}

		brief := p.GenerateBrief(ctx, keyword, userGoal)
		summary.Successful++
		p.recorder.IncBulkItemProcessed("success")
		summary.Results = append(summary.Results, BulkItem{
			Keyword:         keyword,
			Status:          "success",
			Title:           brief.Title,
			WordCountTarget: brief.WordCountTarget,
			Brief:           brief,
		})
	}

	if summary.Total > 0 {
		summary.SuccessRate = float64(summary.Successful) / float64(summary.Total) * 100
	}

	p.logger.Info("bulk processing completed",
		slog.Int("successful", summary.Successful),
		slog.Int("failed", summary.Failed),
	)

	return summary
}

// Stats reports cache size and generation counters.
type Stats struct {
	CacheSize          int    `json:"cache_size"`
	AnalysesGenerated  uint64 `json:"analyses_generated"`
	BriefsGenerated    uint64 `json:"briefs_generated"`
	ArticlesGenerated  uint64 `json:"articles_generated"`
	CalendarsGenerated uint64 `json:"calendars_generated"`
}

// Stats returns a snapshot of pipeline activity.
func (p *Pipeline) Stats() Stats {
	return Stats{
		CacheSize:          p.cache.Len(),
		AnalysesGenerated:  p.analyses.Load(),
		BriefsGenerated:    p.briefs.Load(),
		ArticlesGenerated:  p.articles.Load(),
		CalendarsGenerated: p.calendars.Load(),
	}
}
