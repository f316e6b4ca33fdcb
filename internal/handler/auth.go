package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/seoscribe/seoscribe/internal/auth"
	"github.com/seoscribe/seoscribe/internal/handler/dto"
	"github.com/seoscribe/seoscribe/internal/middleware"
	"github.com/seoscribe/seoscribe/internal/model"
	"github.com/seoscribe/seoscribe/internal/repository"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	repo   *repository.Repository
	issuer *auth.TokenIssuer
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(repo *repository.Repository, issuer *auth.TokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		repo:   repo,
		issuer: issuer,
		logger: logger,
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := middleware.ValidateEmail(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_EMAIL", "A valid email address is required")
		return
	}
	if err := middleware.ValidatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, "WEAK_PASSWORD", "Password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("password hashing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	user := &model.User{
		ID:           model.NewID("usr"),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := h.repo.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			writeError(w, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
			return
		}
		h.logger.Error("user creation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.logger.Info("user_registered",
		"user_id", user.ID,
		"request_id", middleware.GetRequestID(r.Context()),
	)

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.repo.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.writeLoginError(w, r, "unknown_email")
			return
		}
		h.logger.Error("user lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	match, err := auth.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		h.writeLoginError(w, r, "wrong_password")
		return
	}

	if !user.IsActive {
		h.writeLoginError(w, r, "inactive_user")
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		h.logger.Error("token issuing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.logger.Info("user_logged_in",
		"user_id", user.ID,
		"request_id", middleware.GetRequestID(r.Context()),
	)

	writeJSON(w, http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(h.issuer.Expiry().Seconds()),
	})
}

// writeLoginError logs the reason and returns a uniform 401 so callers
// cannot distinguish unknown emails from wrong passwords.
func (h *AuthHandler) writeLoginError(w http.ResponseWriter, r *http.Request, reason string) {
	h.logger.Warn("login failed",
		"reason", reason,
		"ip", r.RemoteAddr,
		"request_id", middleware.GetRequestID(r.Context()),
	)
	writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect email or password")
}
