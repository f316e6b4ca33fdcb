package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/seoscribe/seoscribe/internal/handler/dto"
)

// projectRouter mounts the project handler so URL params resolve.
func projectRouter(h *ProjectHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/projects", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func TestProjectHandler_CRUD(t *testing.T) {
	env := newTestEnv(t)
	identity := env.seedIdentity(t, "owner@example.com")
	router := projectRouter(NewProjectHandler(env.repo, env.logger))

	// Create
	body := `{"name":"Tech Blog","description":"Developer content","website_url":"https://blog.example.com","goals":["grow traffic"]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/projects", strings.NewReader(body), identity))

	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created dto.ProjectResponse
	decodeBody(t, rec, &created)
	if created.ID == "" || created.Name != "Tech Blog" {
		t.Fatalf("unexpected created project: %+v", created)
	}
	if len(created.Goals) != 1 || created.Goals[0] != "grow traffic" {
		t.Errorf("goals not persisted: %v", created.Goals)
	}

	// Get
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/projects/"+created.ID, nil, identity))
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	// Update
	update := `{"description":"Updated description","goals":["grow traffic","build authority"]}`
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPatch, "/projects/"+created.ID, strings.NewReader(update), identity))
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated dto.ProjectResponse
	decodeBody(t, rec, &updated)
	if updated.Description != "Updated description" {
		t.Errorf("description not updated: %q", updated.Description)
	}
	if updated.Name != "Tech Blog" {
		t.Errorf("name should be unchanged, got %q", updated.Name)
	}
	if len(updated.Goals) != 2 {
		t.Errorf("goals not replaced: %v", updated.Goals)
	}

	// List
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/projects", nil, identity))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}

	var list dto.ProjectListResponse
	decodeBody(t, rec, &list)
	if len(list.Data) != 1 {
		t.Errorf("expected 1 project, got %d", len(list.Data))
	}

	// Delete
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/projects/"+created.ID, nil, identity))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/projects/"+created.ID, nil, identity))
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestProjectHandler_OwnerScoping(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedIdentity(t, "owner@example.com")
	intruder := env.seedIdentity(t, "intruder@example.com")
	router := projectRouter(NewProjectHandler(env.repo, env.logger))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/projects",
		strings.NewReader(`{"name":"Private"}`), owner))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", rec.Code)
	}

	var created dto.ProjectResponse
	decodeBody(t, rec, &created)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/projects/"+created.ID, nil, intruder))
	if rec.Code != http.StatusNotFound {
		t.Errorf("other user's get: expected 404, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/projects/"+created.ID, nil, intruder))
	if rec.Code != http.StatusNotFound {
		t.Errorf("other user's delete: expected 404, got %d", rec.Code)
	}
}

func TestProjectHandler_Create_Validation(t *testing.T) {
	env := newTestEnv(t)
	identity := env.seedIdentity(t, "owner@example.com")
	router := projectRouter(NewProjectHandler(env.repo, env.logger))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/projects",
		strings.NewReader(`{"name":"   "}`), identity))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank name: expected 400, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/projects",
		strings.NewReader(`{broken`), identity))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid json: expected 400, got %d", rec.Code)
	}
}
