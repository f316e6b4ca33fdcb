package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/seoscribe/seoscribe/internal/model"
)

// ErrProjectNotFound indicates the project does not exist or is not owned
// by the requesting user.
var ErrProjectNotFound = errors.New("project not found")

// CreateProject inserts a new project.
func (r *Repository) CreateProject(ctx context.Context, p *model.Project) error {
	goals, err := json.Marshal(p.Goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}

	query := `
		INSERT INTO projects (id, name, description, website_url, target_audience, goals, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.WebsiteURL,
		p.TargetAudience,
		string(goals),
		p.OwnerID,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetProject retrieves a project by ID, scoped to the owner.
func (r *Repository) GetProject(ctx context.Context, id, ownerID string) (*model.Project, error) {
	query := `
		SELECT id, name, description, website_url, target_audience, goals, owner_id, created_at, updated_at
		FROM projects
		WHERE id = ? AND owner_id = ?
	`
	return scanProject(r.db.QueryRowContext(ctx, query, id, ownerID))
}

// ListProjects returns all projects owned by the user, newest first.
func (r *Repository) ListProjects(ctx context.Context, ownerID string) ([]*model.Project, error) {
	query := `
		SELECT id, name, description, website_url, target_audience, goals, owner_id, created_at, updated_at
		FROM projects
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*model.Project, 0)
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

// UpdateProject saves the mutable fields of a project, scoped to the owner.
func (r *Repository) UpdateProject(ctx context.Context, p *model.Project) error {
	goals, err := json.Marshal(p.Goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}

	query := `
		UPDATE projects
		SET name = ?, description = ?, website_url = ?, target_audience = ?, goals = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?
	`

	p.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.WebsiteURL,
		p.TargetAudience,
		string(goals),
		p.UpdatedAt,
		p.ID,
		p.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// DeleteProject removes a project, scoped to the owner.
func (r *Repository) DeleteProject(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row *sql.Row) (*model.Project, error) {
	p, err := scanProjectRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProjectRow(row rowScanner) (*model.Project, error) {
	var p model.Project
	var goals string
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.WebsiteURL,
		&p.TargetAudience,
		&goals,
		&p.OwnerID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	if err := json.Unmarshal([]byte(goals), &p.Goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}
	if p.Goals == nil {
		p.Goals = []string{}
	}

	return &p, nil
}
