// Package adapters provides repository implementations for the posts feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"micropost_backend/internal/feature/posts/domain/entity"
	"micropost_backend/internal/feature/posts/usecase"
)

// postPostgres is a Postgres implementation of the PostRepository interface.
type postPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure postPostgres implements PostRepository.
var _ usecase.PostRepository = (*postPostgres)(nil)

// NewPostPostgres creates a new instance of postPostgres.
func NewPostPostgres(db *gorm.DB) *postPostgres {
	return &postPostgres{db: db}
}

// Create persists a new post.
func (r *postPostgres) Create(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// List returns posts joined with the author's name, newest first.
// "user" is quoted because it is a reserved word in Postgres.
func (r *postPostgres) List(ctx context.Context, offset, limit int) ([]entity.PostWithAuthor, error) {
	var rows []entity.PostWithAuthor
	err := r.db.WithContext(ctx).
		Table("micro_post").
		Select(`micro_post.id AS id, micro_post.user_id AS user_id, "user".name AS user_name, ` +
			`micro_post.content AS content, micro_post.created_at AS created_at`).
		Joins(`LEFT JOIN "user" ON "user".id = micro_post.user_id`).
		Order("micro_post.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a post by id.
func (r *postPostgres) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPostNotFound
	}
	return nil
}
