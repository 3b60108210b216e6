package service

import (
	"context"
	"fmt"
	"time"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

const defaultProfileName = "Portfolio Owner"

// ProfileService manages the single portfolio profile record.
type ProfileService struct {
	profileRepo repository.Profile
	users       repository.Users
}

func NewProfileService(profileRepo repository.Profile, users repository.Users) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, users: users}
}

var _ Profile = (*ProfileService)(nil)

// Get returns the stored profile, or a baseline placeholder when nothing
// has been saved yet.
func (s *ProfileService) Get(ctx context.Context) (models.Profile, error) {
	p, err := s.profileRepo.Load(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	if p.FullName == "" {
		return baselineProfile(), nil
	}
	return p, nil
}

// Update overwrites the profile. Admin only: the profile describes the
// portfolio owner, not an individual account.
func (s *ProfileService) Update(ctx context.Context, username string, p models.Profile) (models.Profile, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return models.Profile{}, fmt.Errorf("resolve current user: %w", err)
	}
	if u == nil {
		return models.Profile{}, ErrUserNotFound
	}
	if !u.IsAdmin() {
		return models.Profile{}, ErrForbidden
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.profileRepo.Save(ctx, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// baselineProfile is returned for an uninitialized DB.
func baselineProfile() models.Profile {
	return models.Profile{
		FullName:  defaultProfileName,
		UpdatedAt: time.Now().UTC(),
	}
}
