package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"micropost_backend/internal/feature/auth/domain/entity"
	"micropost_backend/internal/feature/auth/usecase"
)

func TestTokenPostgres_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenPostgres(db)

	token := &entity.AuthToken{
		UserID:   1,
		Token:    "tok-1",
		ExpireAt: time.Now().Add(24 * time.Hour),
	}

	err := repo.Create(context.Background(), token)

	require.NoError(t, err, "failed to create token")
	assert.NotZero(t, token.ID, "ID is not set")

	t.Run("second row for the same user is rejected", func(t *testing.T) {
		err := repo.Create(context.Background(), &entity.AuthToken{
			UserID:   1,
			Token:    "tok-2",
			ExpireAt: time.Now().Add(24 * time.Hour),
		})
		assert.Error(t, err, "user_id unique index should reject a second row")
	})
}

func TestTokenPostgres_FindByUserID(t *testing.T) {
	t.Run("find token regardless of expiry", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenPostgres(db)

		expired := &entity.AuthToken{
			UserID:   1,
			Token:    "tok-expired",
			ExpireAt: time.Now().Add(-time.Hour),
		}
		require.NoError(t, repo.Create(context.Background(), expired))

		found, err := repo.FindByUserID(context.Background(), 1)

		require.NoError(t, err, "failed to find token")
		assert.Equal(t, "tok-expired", found.Token, "token value does not match")
	})

	t.Run("no row for user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenPostgres(db)

		found, err := repo.FindByUserID(context.Background(), 42)

		assert.Nil(t, found, "token should be nil")
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound, "should return ErrTokenNotFound")
	})
}

func TestTokenPostgres_FindValid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenPostgres(db)

	now := time.Now()
	require.NoError(t, repo.Create(context.Background(), &entity.AuthToken{
		UserID:   1,
		Token:    "tok-live",
		ExpireAt: now.Add(time.Hour),
	}))
	require.NoError(t, repo.Create(context.Background(), &entity.AuthToken{
		UserID:   2,
		Token:    "tok-dead",
		ExpireAt: now.Add(-time.Minute),
	}))

	t.Run("live token is found", func(t *testing.T) {
		found, err := repo.FindValid(context.Background(), "tok-live", now)
		require.NoError(t, err)
		assert.Equal(t, uint(1), found.UserID)
	})

	t.Run("expired token is not found", func(t *testing.T) {
		_, err := repo.FindValid(context.Background(), "tok-dead", now)
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound)
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		// expire_at > now の厳密な比較であることを確認
		_, err := repo.FindValid(context.Background(), "tok-live", now.Add(time.Hour))
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound)
	})

	t.Run("unknown token value", func(t *testing.T) {
		_, err := repo.FindValid(context.Background(), "tok-unknown", now)
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound)
	})
}

func TestTokenPostgres_UpdateExpiry(t *testing.T) {
	t.Run("expiry is refreshed and the value preserved", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenPostgres(db)

		token := &entity.AuthToken{
			UserID:   1,
			Token:    "tok-1",
			ExpireAt: time.Now().Add(time.Hour),
		}
		require.NoError(t, repo.Create(context.Background(), token))

		newExpiry := time.Now().Add(48 * time.Hour)
		err := repo.UpdateExpiry(context.Background(), token.ID, newExpiry)

		require.NoError(t, err, "failed to update expiry")

		found, err := repo.FindByUserID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "tok-1", found.Token, "token value should be preserved")
		assert.WithinDuration(t, newExpiry, found.ExpireAt, time.Second, "expiry should be refreshed")
	})

	t.Run("unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenPostgres(db)

		err := repo.UpdateExpiry(context.Background(), 999, time.Now())
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound)
	})
}
