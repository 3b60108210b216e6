package service

import (
	"context"
	"fmt"
	"time"

	"portfolio_backend/internal/dto"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

// ProjectService implements the project CRUD surface with the
// owner-or-admin mutation rule.
type ProjectService struct {
	projects repository.Projects
	users    repository.Users
	activity Activity
	log      *logger.Logger
}

func NewProjectService(projects repository.Projects, users repository.Users, activity Activity, log *logger.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, activity: activity, log: log}
}

var _ Projects = (*ProjectService)(nil)

// nowMillis is swappable in tests that assert timestamp behavior.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// currentUser resolves the authenticated username to a stored account.
func (s *ProjectService) currentUser(username string) (*models.User, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("resolve current user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// canMutate is the two-clause authorization rule: ownership OR admin role.
func canMutate(u *models.User, p *models.Project) bool {
	return p.CreatedBy == u.ID || u.IsAdmin()
}

// GetAll returns every project regardless of owner. Reads are intentionally
// unrestricted for authenticated callers.
func (s *ProjectService) GetAll(ctx context.Context, username string) ([]dto.Project, error) {
	if _, err := s.currentUser(username); err != nil {
		return nil, err
	}
	ps, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromEntities(ps), nil
}

// GetMine returns only the projects owned by the current user.
func (s *ProjectService) GetMine(ctx context.Context, username string) ([]dto.Project, error) {
	u, err := s.currentUser(username)
	if err != nil {
		return nil, err
	}
	ps, err := s.projects.ListByOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromEntities(ps), nil
}

// GetByID returns a single project.
func (s *ProjectService) GetByID(ctx context.Context, username string, id int64) (dto.Project, error) {
	if _, err := s.currentUser(username); err != nil {
		return dto.Project{}, err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return dto.Project{}, err
	}
	if p == nil {
		return dto.Project{}, ErrProjectNotFound
	}
	return dto.FromEntity(*p), nil
}

// Create stores a new project owned by the current user. Both timestamps
// are set to now.
func (s *ProjectService) Create(ctx context.Context, username string, in dto.Project) (dto.Project, error) {
	u, err := s.currentUser(username)
	if err != nil {
		return dto.Project{}, err
	}

	now := nowMillis()
	p := in.ToEntity()
	p.ID = 0 // assigned by the store
	p.CreatedBy = u.ID
	p.CreatedAt = now
	p.UpdatedAt = now

	id, err := s.projects.Create(ctx, p)
	if err != nil {
		return dto.Project{}, err
	}
	p.ID = id

	s.recordActivity(ctx, models.ActivityEvent{
		Type:        models.EventProjectCreated,
		Actor:       u.Username,
		ProjectID:   id,
		Description: fmt.Sprintf("project %q created", p.Title),
	})

	return dto.FromEntity(p), nil
}

// Update overwrites title/description/technologies/link and refreshes
// UpdatedAt. ID, owner and CreatedAt are unchanged. Restricted to
// owner-or-admin.
func (s *ProjectService) Update(ctx context.Context, username string, id int64, in dto.Project) (dto.Project, error) {
	u, err := s.currentUser(username)
	if err != nil {
		return dto.Project{}, err
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return dto.Project{}, err
	}
	if p == nil {
		return dto.Project{}, ErrProjectNotFound
	}
	if !canMutate(u, p) {
		return dto.Project{}, ErrForbidden
	}

	p.Title = in.Title
	p.Description = in.Description
	p.Technologies = in.Technologies
	p.Link = in.Link
	p.UpdatedAt = nowMillis()

	if err := s.projects.Update(ctx, *p); err != nil {
		return dto.Project{}, err
	}

	s.recordActivity(ctx, models.ActivityEvent{
		Type:        models.EventProjectUpdated,
		Actor:       u.Username,
		ProjectID:   id,
		Description: fmt.Sprintf("project %q updated", p.Title),
	})

	return dto.FromEntity(*p), nil
}

// Delete removes a project. Restricted to owner-or-admin.
func (s *ProjectService) Delete(ctx context.Context, username string, id int64) error {
	u, err := s.currentUser(username)
	if err != nil {
		return err
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProjectNotFound
	}
	if !canMutate(u, p) {
		return ErrForbidden
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.recordActivity(ctx, models.ActivityEvent{
		Type:        models.EventProjectDeleted,
		Actor:       u.Username,
		ProjectID:   id,
		Description: fmt.Sprintf("project %q deleted", p.Title),
	})

	return nil
}

// recordActivity appends an audit entry after a successful mutation.
// Best-effort: a failing append never fails the mutation.
func (s *ProjectService) recordActivity(ctx context.Context, e models.ActivityEvent) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, e); err != nil && s.log != nil {
		s.log.Warnw("activity_append_failed", "err", err, "type", e.Type, "project_id", e.ProjectID)
	}
}
