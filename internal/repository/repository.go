package repository

import (
	"context"
	"database/sql"
	"time"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository/db"
)

type Users interface {
	Create(u models.User) (int64, error)
	GetByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
}

type Projects interface {
	Create(ctx context.Context, p models.Project) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Project, error)
	Update(ctx context.Context, p models.Project) error
	Delete(ctx context.Context, id int64) error
}

type Activity interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Profile interface {
	Save(ctx context.Context, p models.Profile) error
	Load(ctx context.Context) (models.Profile, error)
}

type Repository struct {
	Users    Users
	Projects Projects
	Activity Activity
	Profile  Profile
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(conn),
		Projects: NewProjectRepository(conn),
		Activity: NewActivityRepository(conn),
		Profile:  NewProfileRepository(conn),
	}
}

// InitDB opens the SQLite file and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
