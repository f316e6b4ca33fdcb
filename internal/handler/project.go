package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seoscribe/seoscribe/internal/auth"
	"github.com/seoscribe/seoscribe/internal/handler/dto"
	"github.com/seoscribe/seoscribe/internal/model"
	"github.com/seoscribe/seoscribe/internal/repository"
)

// ProjectHandler handles CRUD requests for content projects.
type ProjectHandler struct {
	repo   *repository.Repository
	logger *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(repo *repository.Repository, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		repo:   repo,
		logger: logger,
	}
}

// Create handles POST /api/v1/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	var req dto.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "Project name is required")
		return
	}

	now := time.Now()
	project := &model.Project{
		ID:             model.NewID("prj"),
		OwnerID:        identity.UserID,
		Name:           name,
		Description:    strings.TrimSpace(req.Description),
		WebsiteURL:     strings.TrimSpace(req.WebsiteURL),
		TargetAudience: strings.TrimSpace(req.TargetAudience),
		Goals:          req.Goals,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := h.repo.CreateProject(r.Context(), project); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("project_created",
		"project_id", project.ID,
		"user_id", identity.UserID,
	)

	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(project))
}

// Get handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Project ID is required")
		return
	}

	project, err := h.repo.GetProject(r.Context(), id, identity.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(project))
}

// List handles GET /api/v1/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	projects, err := h.repo.ListProjects(r.Context(), identity.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// Update handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Project ID is required")
		return
	}

	var req dto.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	project, err := h.repo.GetProject(r.Context(), id, identity.UserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "MISSING_NAME", "Project name must not be empty")
			return
		}
		project.Name = name
	}
	if req.Description != nil {
		project.Description = strings.TrimSpace(*req.Description)
	}
	if req.WebsiteURL != nil {
		project.WebsiteURL = strings.TrimSpace(*req.WebsiteURL)
	}
	if req.TargetAudience != nil {
		project.TargetAudience = strings.TrimSpace(*req.TargetAudience)
	}
	if req.Goals != nil {
		project.Goals = *req.Goals
	}

	if err := h.repo.UpdateProject(r.Context(), project); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("project_updated",
		"project_id", project.ID,
		"user_id", identity.UserID,
	)

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(project))
}

// Delete handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := auth.MustIdentityFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Project ID is required")
		return
	}

	if err := h.repo.DeleteProject(r.Context(), id, identity.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("project_deleted",
		"project_id", id,
		"user_id", identity.UserID,
	)

	w.WriteHeader(http.StatusNoContent)
}

// handleError maps repository errors to HTTP responses.
func (h *ProjectHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
