// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"micropost_backend/internal/feature/auth/domain/entity"
	"micropost_backend/internal/feature/auth/usecase"
)

// tokenPostgres is a Postgres implementation of the TokenRepository interface.
type tokenPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenPostgres implements TokenRepository.
var _ usecase.TokenRepository = (*tokenPostgres)(nil)

// NewTokenPostgres creates a new instance of tokenPostgres.
func NewTokenPostgres(db *gorm.DB) *tokenPostgres {
	return &tokenPostgres{db: db}
}

// FindByUserID retrieves the token row for a user regardless of expiry.
// The unique index on user_id guarantees at most one row.
func (r *tokenPostgres) FindByUserID(ctx context.Context, userID uint) (*entity.AuthToken, error) {
	var model TokenModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// FindValid retrieves a token row whose value matches and whose expire_at is
// strictly after now.
func (r *tokenPostgres) FindValid(ctx context.Context, token string, now time.Time) (*entity.AuthToken, error) {
	var model TokenModel
	if err := r.db.WithContext(ctx).
		Where("token = ? AND expire_at > ?", token, now).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Create persists a new token row.
func (r *tokenPostgres) Create(ctx context.Context, token *entity.AuthToken) error {
	model := TokenModelFromEntity(token)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	token.ID = model.ID
	return nil
}

// UpdateExpiry extends the expiry of an existing token row. The token value
// itself is left untouched.
func (r *tokenPostgres) UpdateExpiry(ctx context.Context, id uint, expireAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&TokenModel{}).
		Where("id = ?", id).
		Update("expire_at", expireAt)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTokenNotFound
	}
	return nil
}
