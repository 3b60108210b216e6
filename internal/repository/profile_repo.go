package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"portfolio_backend/internal/models"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ Profile = (*ProfileRepository)(nil)

const (
	profileRowID = 1

	upsertProfileSQL = `
		INSERT INTO profile (id, full_name, headline, bio, email, location, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			full_name=excluded.full_name,
			headline=excluded.headline,
			bio=excluded.bio,
			email=excluded.email,
			location=excluded.location,
			updated_at=excluded.updated_at
	`

	selectProfileSQL = `
		SELECT full_name, headline, bio, email, location, updated_at
		FROM profile WHERE id=?
	`
)

// Save updates or inserts the profile row (id always 1).
func (r *ProfileRepository) Save(ctx context.Context, p models.Profile) error {
	// Persist UpdatedAt as UTC; set if zero.
	tsUTC := p.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertProfileSQL,
		profileRowID,
		p.FullName,
		p.Headline,
		p.Bio,
		p.Email,
		p.Location,
		tsUTC,
	)
	return err
}

// Load fetches the single profile row. Returns a zero Profile when nothing
// has been saved yet.
func (r *ProfileRepository) Load(ctx context.Context) (models.Profile, error) {
	row := r.db.QueryRowContext(ctx, selectProfileSQL, profileRowID)

	var p models.Profile
	if err := row.Scan(
		&p.FullName,
		&p.Headline,
		&p.Bio,
		&p.Email,
		&p.Location,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, nil // no profile yet
		}
		return models.Profile{}, err
	}
	p.UpdatedAt = p.UpdatedAt.UTC()

	return p, nil
}
