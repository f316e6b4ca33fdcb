package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seoscribe/seoscribe/internal/auth"
	"github.com/seoscribe/seoscribe/internal/handler/dto"
	"github.com/seoscribe/seoscribe/internal/metrics"
	"github.com/seoscribe/seoscribe/internal/middleware"
	"github.com/seoscribe/seoscribe/internal/model"
	"github.com/seoscribe/seoscribe/internal/repository"
	"github.com/seoscribe/seoscribe/internal/seo"
	"github.com/seoscribe/seoscribe/internal/storage"
	"github.com/seoscribe/seoscribe/internal/tasks"
)

// articleTaskTimeout bounds background article generation.
const articleTaskTimeout = 5 * time.Minute

// SEOHandler exposes the retrieval and generation pipeline over HTTP.
type SEOHandler struct {
	pipeline *seo.Pipeline
	repo     *repository.Repository
	files    *storage.Manager
	tasks    *tasks.Store
	recorder metrics.Recorder
	logger   *slog.Logger

	bulkMax     int
	calendarMax int
}

// NewSEOHandler creates a new SEOHandler.
func NewSEOHandler(
	pipeline *seo.Pipeline,
	repo *repository.Repository,
	files *storage.Manager,
	taskStore *tasks.Store,
	recorder metrics.Recorder,
	bulkMax, calendarMax int,
	logger *slog.Logger,
) *SEOHandler {
	return &SEOHandler{
		pipeline:    pipeline,
		repo:        repo,
		files:       files,
		tasks:       taskStore,
		recorder:    recorder,
		logger:      logger,
		bulkMax:     bulkMax,
		calendarMax: calendarMax,
	}
}

// Analyze handles POST /api/v1/seo/analyze.
func (h *SEOHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	req, ok := h.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	seoCtx := h.pipeline.AnalyzeKeyword(r.Context(), req.Keyword, req.UserGoal)

	id := model.NewID("ana")
	h.persist(r.Context(), repository.KindAnalysis, storage.DirAnalyses, id, identity.UserID, req.Keyword, seoCtx)

	writeJSON(w, http.StatusOK, dto.AnalysisResponse{ID: id, SEOContext: seoCtx})
}

// Brief handles POST /api/v1/seo/brief.
func (h *SEOHandler) Brief(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	req, ok := h.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	brief := h.pipeline.GenerateBrief(r.Context(), req.Keyword, req.UserGoal)

	id := model.NewID("brf")
	h.persist(r.Context(), repository.KindBrief, storage.DirBriefs, id, identity.UserID, req.Keyword, brief)

	writeJSON(w, http.StatusOK, dto.BriefResponse{ID: id, ContentBrief: brief})
}

// Article handles POST /api/v1/seo/article. Generation runs in the
// background; the response carries a task ID to poll.
func (h *SEOHandler) Article(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	req, ok := h.decodeAnalyzeRequest(w, r)
	if !ok {
		return
	}

	task := h.tasks.Create(identity.UserID, fmt.Sprintf("generating article for %q", req.Keyword))
	h.recorder.IncTaskStarted()

	h.logger.Info("article_task_started",
		"task_id", task.ID,
		"keyword", req.Keyword,
		"user_id", identity.UserID,
		"request_id", middleware.GetRequestID(r.Context()),
	)

	go h.runArticleTask(task.ID, identity.UserID, req.Keyword, req.UserGoal)

	writeJSON(w, http.StatusAccepted, dto.TaskAcceptedResponse{
		TaskID: task.ID,
		Status: string(model.TaskProcessing),
	})
}

// runArticleTask generates a full article and records the outcome on
// the task. Detached from the request context so the work survives the
// client disconnecting.
func (h *SEOHandler) runArticleTask(taskID, userID, keyword, userGoal string) {
	ctx, cancel := context.WithTimeout(context.Background(), articleTaskTimeout)
	defer cancel()

	defer func() {
		if rvr := recover(); rvr != nil {
			h.tasks.Fail(taskID, fmt.Sprintf("article generation panicked: %v", rvr))
			h.recorder.IncTaskFinished("failed")
			h.logger.Error("article task panicked", "task_id", taskID, "panic", rvr)
		}
	}()

	h.tasks.SetProgress(taskID, 10, "retrieving context")
	article := h.pipeline.GenerateArticle(ctx, keyword, userGoal)

	h.tasks.SetProgress(taskID, 90, "saving article")
	id := model.NewID("art")
	h.persist(ctx, repository.KindArticle, storage.DirArticles, id, userID, keyword, article)

	h.tasks.Complete(taskID, dto.ArticleResponse{ID: id, FullArticle: article})
	h.recorder.IncTaskFinished("completed")

	h.logger.Info("article_task_completed",
		"task_id", taskID,
		"article_id", id,
		"word_count", article.TotalWordCount,
	)
}

// Bulk handles POST /api/v1/seo/bulk.
func (h *SEOHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	var req dto.BulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	keywords, ok := h.validateKeywordList(w, req.Keywords, h.bulkMax)
	if !ok {
		return
	}
	if err := middleware.ValidateUserGoal(req.UserGoal); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_GOAL", "User goal exceeds maximum length")
		return
	}

	summary := h.pipeline.BulkProcess(r.Context(), keywords, req.UserGoal)

	h.logger.Info("bulk_processed",
		"total", summary.Total,
		"successful", summary.Successful,
		"user_id", identity.UserID,
	)

	writeJSON(w, http.StatusOK, summary)
}

// Calendar handles POST /api/v1/seo/calendar.
func (h *SEOHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	var req dto.CalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	keywords, ok := h.validateKeywordList(w, req.Keywords, h.calendarMax)
	if !ok {
		return
	}

	weeks := req.TimeframeWeeks
	if weeks == 0 {
		weeks = seo.DefaultCalendarWeeks
	}
	if weeks < 1 || weeks > 52 {
		writeError(w, http.StatusBadRequest, "INVALID_TIMEFRAME", "Timeframe must be between 1 and 52 weeks")
		return
	}

	calendar := h.pipeline.PlanCalendar(r.Context(), keywords, weeks)

	id := model.NewID("cal")
	h.persist(r.Context(), repository.KindCalendar, storage.DirCalendars, id, identity.UserID, strings.Join(keywords, ", "), calendar)

	writeJSON(w, http.StatusOK, dto.CalendarResponse{ID: id, ContentCalendar: calendar})
}

// History handles GET /api/v1/seo/history/{kind}.
func (h *SEOHandler) History(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	kind, ok := artifactKind(chi.URLParam(r, "kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_KIND", "Kind must be one of: analyses, briefs, articles, calendars")
		return
	}

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if _, err := fmt.Sscanf(l, "%d", &limit); err != nil || limit < 1 || limit > 100 {
			writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "Limit must be between 1 and 100")
			return
		}
	}

	artifacts, err := h.repo.ListArtifacts(r.Context(), kind, identity.UserID, limit)
	if err != nil {
		h.logger.Error("history lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": artifacts})
}

// decodeAnalyzeRequest decodes and validates the shared keyword+goal
// request body. Returns false after writing the error response.
func (h *SEOHandler) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (dto.AnalyzeRequest, bool) {
	var req dto.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return req, false
	}

	req.Keyword = strings.TrimSpace(req.Keyword)
	if err := middleware.ValidateKeyword(req.Keyword); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KEYWORD", "Keyword must be between 2 and 200 characters")
		return req, false
	}
	if err := middleware.ValidateUserGoal(req.UserGoal); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_GOAL", "User goal exceeds maximum length")
		return req, false
	}

	return req, true
}

// validateKeywordList trims and validates every keyword in a bulk
// request. Returns false after writing the error response.
func (h *SEOHandler) validateKeywordList(w http.ResponseWriter, raw []string, limit int) ([]string, bool) {
	if len(raw) == 0 {
		writeError(w, http.StatusBadRequest, "MISSING_KEYWORDS", "At least one keyword is required")
		return nil, false
	}
	if len(raw) > limit {
		writeError(w, http.StatusBadRequest, "TOO_MANY_KEYWORDS",
			fmt.Sprintf("At most %d keywords are allowed per request", limit))
		return nil, false
	}

	keywords := make([]string, 0, len(raw))
	for _, kw := range raw {
		trimmed := strings.TrimSpace(kw)
		if err := middleware.ValidateKeyword(trimmed); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_KEYWORD",
				fmt.Sprintf("Keyword %q must be between 2 and 200 characters", kw))
			return nil, false
		}
		keywords = append(keywords, trimmed)
	}

	return keywords, true
}

// persist stores an artifact in SQLite and as a JSON file. Persistence
// failures are logged but never fail the generation response.
func (h *SEOHandler) persist(ctx context.Context, kind repository.ArtifactKind, dir, id, userID, keyword string, payload any) {
	if err := h.repo.SaveArtifact(ctx, kind, id, userID, keyword, payload); err != nil {
		h.logger.Warn("artifact db save failed",
			"kind", string(kind),
			"artifact_id", id,
			"error", err,
		)
	}
	if _, err := h.files.Save(dir, id, payload); err != nil {
		h.logger.Warn("artifact file save failed",
			"kind", string(kind),
			"artifact_id", id,
			"error", err,
		)
	}
}

// artifactKind maps the history path segment to a storage kind.
func artifactKind(segment string) (repository.ArtifactKind, bool) {
	switch segment {
	case storage.DirAnalyses:
		return repository.KindAnalysis, true
	case storage.DirBriefs:
		return repository.KindBrief, true
	case storage.DirArticles:
		return repository.KindArticle, true
	case storage.DirCalendars:
		return repository.KindCalendar, true
	default:
		return "", false
	}
}
