package service

import (
	"context"
	"time"

	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

type Authorization interface {
	Login(username, password string) (models.LoginResponse, error)
	ParseToken(accessToken string) (string, error)
	InitializeDefaultUsers() error
}

// Projects exposes the project CRUD surface. Every operation takes the
// authenticated username explicitly; there is no ambient security context.
type Projects interface {
	GetAll(ctx context.Context, username string) ([]dto.Project, error)
	GetMine(ctx context.Context, username string) ([]dto.Project, error)
	GetByID(ctx context.Context, username string, id int64) (dto.Project, error)
	Create(ctx context.Context, username string, in dto.Project) (dto.Project, error)
	Update(ctx context.Context, username string, id int64, in dto.Project) (dto.Project, error)
	Delete(ctx context.Context, username string, id int64) error
}

// Activity exposes the append-only audit log with filtering access.
type Activity interface {
	Record(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error)
}

// Profile exposes the single portfolio owner profile.
type Profile interface {
	Get(ctx context.Context) (models.Profile, error)
	Update(ctx context.Context, username string, p models.Profile) (models.Profile, error)
}

// ActivityFilter narrows an activity listing.
type ActivityFilter struct {
	From time.Time
	To   time.Time
	Type string
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Projects
	Activity
	Profile
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, log *logger.Logger) *Service {
	activity := NewActivityService(repos.Activity)
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Projects:      NewProjectService(repos.Projects, repos.Users, activity, log),
		Activity:      activity,
		Profile:       NewProfileService(repos.Profile, repos.Users),
	}
}
