// Package usecase implements the business logic for the profile feature.
package usecase

import (
	"context"
	"errors"

	"micropost_backend/internal/feature/profile/domain/entity"
)

// ErrProfileNotFound is returned when no profile exists for a name.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository abstracts the persistence layer for profile entities.
type ProfileRepository interface {
	// FindByName retrieves a profile by user name.
	// Returns ErrProfileNotFound when no row matches.
	FindByName(ctx context.Context, name string) (*entity.UserProfile, error)
	// UpdatePicURL sets the profile picture URL for the named profile.
	// Returns ErrProfileNotFound when no row matches.
	UpdatePicURL(ctx context.Context, name, url string) error
}

// profileUsecase implements profile reads and picture updates.
type profileUsecase struct {
	profiles ProfileRepository
}

// NewProfileUsecase creates a new instance of profileUsecase.
func NewProfileUsecase(profiles ProfileRepository) *profileUsecase {
	return &profileUsecase{profiles: profiles}
}

// Get returns the profile for a name, or nil when none exists.
// Profiles are publicly readable; absence is not an error to the caller.
func (u *profileUsecase) Get(ctx context.Context, name string) (*entity.UserProfile, error) {
	profile, err := u.profiles.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// SetPicture updates the profile picture URL for a name.
func (u *profileUsecase) SetPicture(ctx context.Context, name, url string) error {
	return u.profiles.UpdatePicURL(ctx, name, url)
}
