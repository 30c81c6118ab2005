// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a confirmed user in the directory.
// Users are only ever created by confirming a pending registration.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the user's display name. It must be unique across all users.
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`

	// Email is the user's email address. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Hash is the salted password hash in "digest.salt" form.
	// It is never serialized to API responses.
	Hash string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for GORM.
// The existing schema uses the singular "user"; queries must quote it
// because "user" is reserved in Postgres.
func (User) TableName() string {
	return "user"
}
