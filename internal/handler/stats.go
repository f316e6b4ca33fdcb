package handler

import (
	"log/slog"
	"net/http"

	"github.com/seoscribe/seoscribe/internal/auth"
	"github.com/seoscribe/seoscribe/internal/handler/dto"
	"github.com/seoscribe/seoscribe/internal/repository"
	"github.com/seoscribe/seoscribe/internal/seo"
)

// StatsHandler reports stored artifact counts and pipeline counters.
type StatsHandler struct {
	pipeline *seo.Pipeline
	repo     *repository.Repository
	logger   *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(pipeline *seo.Pipeline, repo *repository.Repository, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		pipeline: pipeline,
		repo:     repo,
		logger:   logger,
	}
}

// Get handles GET /api/v1/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	stored, err := h.repo.GetUserStats(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("stats lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	session := h.pipeline.Stats()

	writeJSON(w, http.StatusOK, dto.StatsResponse{
		Analyses:         stored.Analyses,
		Briefs:           stored.Briefs,
		Articles:         stored.Articles,
		Calendars:        stored.Calendars,
		Projects:         stored.Projects,
		ContextCacheSize: session.CacheSize,
		SessionAnalyses:  session.AnalysesGenerated,
		SessionBriefs:    session.BriefsGenerated,
		SessionArticles:  session.ArticlesGenerated,
		SessionCalendars: session.CalendarsGenerated,
	})
}
