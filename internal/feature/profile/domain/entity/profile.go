// Package entity defines the domain entities for the profile feature.
package entity

import "time"

// UserProfile is the publicly readable profile for a confirmed user.
// It is created alongside the User when a pending registration is promoted.
type UserProfile struct {
	// ID is the unique identifier for the profile.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name matches User.Name.
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`

	// ProfilePicURL points at the hosted profile image. Nil until set.
	ProfilePicURL *string `gorm:"size:2048" json:"profile_pic_url"`

	// CreatedAt is the timestamp when the profile was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the profile was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for GORM.
func (UserProfile) TableName() string {
	return "user_profile"
}
