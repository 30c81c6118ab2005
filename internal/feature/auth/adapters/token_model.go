package adapters

import (
	"time"

	"micropost_backend/internal/feature/auth/domain/entity"
)

// TokenModel is the GORM model for the auth table.
type TokenModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex;not null"`
	Token     string    `gorm:"uniqueIndex;size:64;not null"`
	ExpireAt  time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (TokenModel) TableName() string {
	return "auth"
}

// ToEntity converts the GORM model to a domain entity.
func (m *TokenModel) ToEntity() *entity.AuthToken {
	return &entity.AuthToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		ExpireAt:  m.ExpireAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TokenModelFromEntity converts a domain entity to a GORM model.
func TokenModelFromEntity(t *entity.AuthToken) *TokenModel {
	return &TokenModel{
		ID:        t.ID,
		UserID:    t.UserID,
		Token:     t.Token,
		ExpireAt:  t.ExpireAt,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
