package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"micropost_backend/internal/feature/auth/domain/entity"
	"micropost_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &TokenModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// createTestUser inserts a user directly and returns it.
func createTestUser(t *testing.T, db *gorm.DB, name, email string) *entity.User {
	t.Helper()

	u := &entity.User{Name: name, Email: email, Hash: "digest.salt"}
	require.NoError(t, db.Create(u).Error, "failed to create test user")
	return u
}

func TestUserPostgres_FindByName(t *testing.T) {
	t.Run("find user by name successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)
		expected := createTestUser(t, db, "alice", "a@x.com")

		found, err := repo.FindByName(context.Background(), "alice")

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
		assert.Equal(t, expected.Hash, found.Hash, "hash does not match")
	})

	t.Run("name not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		found, err := repo.FindByName(context.Background(), "nobody")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)
		expected := createTestUser(t, db, "alice", "a@x.com")

		found, err := repo.FindByEmail(context.Background(), "a@x.com")

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Name, found.Name, "name does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		found, err := repo.FindByEmail(context.Background(), "nobody@x.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	t.Run("find user by id successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)
		expected := createTestUser(t, db, "alice", "a@x.com")

		found, err := repo.FindByID(context.Background(), expected.ID)

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.Name, found.Name, "name does not match")
	})

	t.Run("id not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserTable_UniqueConstraints(t *testing.T) {
	db := setupTestDB(t)

	createTestUser(t, db, "alice", "a@x.com")

	t.Run("duplicate name is rejected", func(t *testing.T) {
		err := db.Create(&entity.User{Name: "alice", Email: "other@x.com", Hash: "h.s"}).Error
		assert.Error(t, err, "should reject duplicate name")
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := db.Create(&entity.User{Name: "bob", Email: "a@x.com", Hash: "h.s"}).Error
		assert.Error(t, err, "should reject duplicate email")
	})
}
