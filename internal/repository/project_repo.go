package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfolio_backend/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var _ Projects = (*ProjectRepository)(nil)

const (
	insertProjectSQL = `
		INSERT INTO projects (title, description, technologies, link, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	selectProjectByIDSQL = `
		SELECT id, title, description, technologies, link, created_by, created_at, updated_at
		FROM projects WHERE id = ?`

	selectAllProjectsSQL = `
		SELECT id, title, description, technologies, link, created_by, created_at, updated_at
		FROM projects ORDER BY id ASC`

	selectProjectsByOwnerSQL = `
		SELECT id, title, description, technologies, link, created_by, created_at, updated_at
		FROM projects WHERE created_by = ? ORDER BY id ASC`

	updateProjectSQL = `
		UPDATE projects SET title = ?, description = ?, technologies = ?, link = ?, updated_at = ?
		WHERE id = ?`

	deleteProjectSQL = `DELETE FROM projects WHERE id = ?`
)

// Create inserts a new project row and returns its ID.
func (r *ProjectRepository) Create(ctx context.Context, p models.Project) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertProjectSQL,
		p.Title,
		p.Description,
		nullIfEmpty(p.Technologies),
		nullIfEmpty(p.Link),
		p.CreatedBy,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert project %q: %w", p.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for project %q: %w", p.Title, err)
	}
	return lastID, nil
}

// GetByID fetches one project. Returns (nil, nil) if the id is absent.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, selectProjectByIDSQL, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select project %d: %w", id, err)
	}
	return p, nil
}

// List returns all projects, any owner, ordered by id.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectAllProjectsSQL)
	if err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	return collectProjects(rows)
}

// ListByOwner returns the projects created by a single user, ordered by id.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectProjectsByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select projects for owner %d: %w", ownerID, err)
	}
	return collectProjects(rows)
}

// Update overwrites the mutable columns of an existing row. ID, owner and
// created_at are never touched.
func (r *ProjectRepository) Update(ctx context.Context, p models.Project) error {
	_, err := r.db.ExecContext(ctx, updateProjectSQL,
		p.Title,
		p.Description,
		nullIfEmpty(p.Technologies),
		nullIfEmpty(p.Link),
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project %d: %w", p.ID, err)
	}
	return nil
}

// Delete removes the row. Absence checks belong to the caller.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteProjectSQL, id); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*models.Project, error) {
	var (
		p            models.Project
		technologies sql.NullString
		link         sql.NullString
	)
	if err := s.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&technologies,
		&link,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Technologies = technologies.String
	p.Link = link.String
	return &p, nil
}

func collectProjects(rows *sql.Rows) ([]models.Project, error) {
	defer rows.Close()

	out := make([]models.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
