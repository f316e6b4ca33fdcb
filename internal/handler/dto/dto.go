// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/seoscribe/seoscribe/internal/model"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse represents an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// CreateProjectRequest represents the request body for creating a project.
type CreateProjectRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	WebsiteURL     string   `json:"website_url,omitempty"`
	TargetAudience string   `json:"target_audience,omitempty"`
	Goals          []string `json:"goals,omitempty"`
}

// UpdateProjectRequest represents the request body for updating a project.
type UpdateProjectRequest struct {
	Name           *string   `json:"name,omitempty"`
	Description    *string   `json:"description,omitempty"`
	WebsiteURL     *string   `json:"website_url,omitempty"`
	TargetAudience *string   `json:"target_audience,omitempty"`
	Goals          *[]string `json:"goals,omitempty"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	WebsiteURL     string    `json:"website_url,omitempty"`
	TargetAudience string    `json:"target_audience,omitempty"`
	Goals          []string  `json:"goals"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProjectListResponse represents a list of projects.
type ProjectListResponse struct {
	Data []ProjectResponse `json:"data"`
}

// AnalyzeRequest represents the request body for keyword analysis
// and brief generation.
type AnalyzeRequest struct {
	Keyword  string `json:"keyword"`
	UserGoal string `json:"user_goal,omitempty"`
}

// BulkRequest represents the request body for bulk brief generation.
type BulkRequest struct {
	Keywords []string `json:"keywords"`
	UserGoal string   `json:"user_goal,omitempty"`
}

// CalendarRequest represents the request body for calendar planning.
type CalendarRequest struct {
	Keywords       []string `json:"keywords"`
	TimeframeWeeks int      `json:"timeframe_weeks,omitempty"`
}

// AnalysisResponse is a stored keyword analysis with its artifact ID.
type AnalysisResponse struct {
	ID string `json:"id"`
	*model.SEOContext
}

// BriefResponse is a stored content brief with its artifact ID.
type BriefResponse struct {
	ID string `json:"id"`
	*model.ContentBrief
}

// ArticleResponse is a stored article with its artifact ID.
type ArticleResponse struct {
	ID string `json:"id"`
	*model.FullArticle
}

// CalendarResponse is a stored content calendar with its artifact ID.
type CalendarResponse struct {
	ID string `json:"id"`
	*model.ContentCalendar
}

// TaskAcceptedResponse is returned when work is queued in the background.
type TaskAcceptedResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// StatsResponse aggregates stored artifact counts with runtime
// pipeline counters.
type StatsResponse struct {
	Analyses         int    `json:"analyses"`
	Briefs           int    `json:"briefs"`
	Articles         int    `json:"articles"`
	Calendars        int    `json:"calendars"`
	Projects         int    `json:"projects"`
	ContextCacheSize int    `json:"context_cache_size"`
	SessionAnalyses  uint64 `json:"session_analyses"`
	SessionBriefs    uint64 `json:"session_briefs"`
	SessionArticles  uint64 `json:"session_articles"`
	SessionCalendars uint64 `json:"session_calendars"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// ToProjectResponse converts a Project model to ProjectResponse DTO.
func ToProjectResponse(project *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:             project.ID,
		Name:           project.Name,
		Description:    project.Description,
		WebsiteURL:     project.WebsiteURL,
		TargetAudience: project.TargetAudience,
		Goals:          project.Goals,
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
	}
}

// ToProjectListResponse converts a slice of Project models.
func ToProjectListResponse(projects []*model.Project) *ProjectListResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *ToProjectResponse(project)
	}
	return &ProjectListResponse{Data: responses}
}
