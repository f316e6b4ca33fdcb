package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ArtifactKind names a generated artifact table.
type ArtifactKind string

const (
	KindAnalysis ArtifactKind = "analysis"
	KindBrief    ArtifactKind = "brief"
	KindArticle  ArtifactKind = "article"
	KindCalendar ArtifactKind = "calendar"
)

// ErrUnknownArtifactKind indicates an unrecognized artifact kind.
var ErrUnknownArtifactKind = errors.New("unknown artifact kind")

var artifactTables = map[ArtifactKind]string{
	KindAnalysis: "keyword_analyses",
	KindBrief:    "content_briefs",
	KindArticle:  "full_articles",
	KindCalendar: "content_calendars",
}

// Artifact is a stored generation result. Data holds the artifact JSON.
type Artifact struct {
	ID        string          `json:"id"`
	Keyword   string          `json:"keyword"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveArtifact persists a generated artifact as a JSON blob.
func (r *Repository) SaveArtifact(ctx context.Context, kind ArtifactKind, id, ownerID, keyword string, payload any) error {
	table, ok := artifactTables[kind]
	if !ok {
		return ErrUnknownArtifactKind
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, owner_id, keyword, data, created_at) VALUES (?, ?, ?, ?, ?)`,
		table,
	)

	if _, err := r.db.ExecContext(ctx, query, id, ownerID, keyword, string(data), time.Now()); err != nil {
		return fmt.Errorf("failed to save %s: %w", kind, err)
	}

	return nil
}

// ListArtifacts returns the user's artifacts of one kind, newest first.
func (r *Repository) ListArtifacts(ctx context.Context, kind ArtifactKind, ownerID string, limit int) ([]Artifact, error) {
	table, ok := artifactTables[kind]
	if !ok {
		return nil, ErrUnknownArtifactKind
	}
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(
		`SELECT id, keyword, data, created_at FROM %s WHERE owner_id = ? ORDER BY created_at DESC LIMIT ?`,
		table,
	)

	rows, err := r.db.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer rows.Close()

	artifacts := make([]Artifact, 0)
	for rows.Next() {
		var a Artifact
		var data string
		if err := rows.Scan(&a.ID, &a.Keyword, &data, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		a.Data = json.RawMessage(data)
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", kind, err)
	}

	return artifacts, nil
}

// UserStats holds per-user artifact counts.
type UserStats struct {
	Analyses  int `json:"analyses"`
	Briefs    int `json:"briefs"`
	Articles  int `json:"articles"`
	Calendars int `json:"calendars"`
	Projects  int `json:"projects"`
}

// GetUserStats counts the user's stored artifacts and projects.
func (r *Repository) GetUserStats(ctx context.Context, ownerID string) (*UserStats, error) {
	stats := &UserStats{}

	counts := []struct {
		table string
		dest  *int
	}{
		{"keyword_analyses", &stats.Analyses},
		{"content_briefs", &stats.Briefs},
		{"full_articles", &stats.Articles},
		{"content_calendars", &stats.Calendars},
		{"projects", &stats.Projects},
	}

	for _, c := range counts {
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE owner_id = ?`, c.table)
		if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	return stats, nil
}
