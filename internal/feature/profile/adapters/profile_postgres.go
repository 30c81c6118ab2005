// Package adapters provides repository implementations for the profile feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"micropost_backend/internal/feature/profile/domain/entity"
	"micropost_backend/internal/feature/profile/usecase"
)

// profilePostgres is a Postgres implementation of the ProfileRepository interface.
type profilePostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure profilePostgres implements ProfileRepository.
var _ usecase.ProfileRepository = (*profilePostgres)(nil)

// NewProfilePostgres creates a new instance of profilePostgres.
func NewProfilePostgres(db *gorm.DB) *profilePostgres {
	return &profilePostgres{db: db}
}

// FindByName retrieves a profile by user name.
func (r *profilePostgres) FindByName(ctx context.Context, name string) (*entity.UserProfile, error) {
	var p entity.UserProfile
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdatePicURL sets the profile picture URL for the named profile.
func (r *profilePostgres) UpdatePicURL(ctx context.Context, name, url string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.UserProfile{}).
		Where("name = ?", name).
		Update("profile_pic_url", url)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrProfileNotFound
	}
	return nil
}
