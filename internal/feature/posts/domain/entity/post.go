// Package entity defines the domain entities for the posts feature.
package entity

import "time"

// Post is a short text post attributed to a user.
type Post struct {
	// ID is the unique identifier for the post.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the author's user id, taken from the caller's token.
	UserID uint `gorm:"index;not null" json:"user_id"`

	// Content is the post body.
	Content string `gorm:"size:1024;not null" json:"content"`

	// CreatedAt orders the feed (newest first).
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the post was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for GORM.
// Named "micro_post" to stay compatible with the existing schema.
func (Post) TableName() string {
	return "micro_post"
}

// PostWithAuthor is a feed row joined with the author's name.
type PostWithAuthor struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
