// Package entity defines the domain entities for the registration feature.
package entity

import "time"

// PendingRegistration is an unconfirmed signup or a password-reset request.
// Both flows share this row shape; a one-time opaque id correlates the
// emailed link to the row. The row is consumed (deleted) exactly once on
// confirmation, or removed by the sweeper after the retention window.
type PendingRegistration struct {
	// ID is the unique identifier for the row.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the requested (or existing, for resets) user name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the address the confirmation link was sent to.
	Email string `gorm:"size:255;not null" json:"email"`

	// Hash is the salted password hash in "digest.salt" form.
	// It is never serialized to API responses.
	Hash string `gorm:"size:255;not null" json:"-"`

	// UUID is the one-time opaque id embedded in the emailed link.
	// It must not resolve again once the row is consumed.
	UUID string `gorm:"column:uuid;uniqueIndex;size:64;not null" json:"uuid"`

	// CreatedAt drives the sweeper's retention window.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the row was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for GORM.
// Named "temporary_user" to stay compatible with the existing schema.
func (PendingRegistration) TableName() string {
	return "temporary_user"
}
