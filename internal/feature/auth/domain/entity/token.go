package entity

import "time"

// AuthToken represents a user's opaque bearer token.
// At most one token row exists per user; a new login refreshes the
// expiry of the existing row instead of creating a second session.
type AuthToken struct {
	ID        uint      // Row identifier
	UserID    uint      // Associated user ID (unique)
	Token     string    // Opaque token value (UUID string)
	ExpireAt  time.Time // Token expiration time
	CreatedAt time.Time // Row creation time
	UpdatedAt time.Time // Last renewal time
}

// IsExpired returns true if the token is no longer valid at the given time.
// A token is valid only while ExpireAt is strictly in the future.
func (t *AuthToken) IsExpired(now time.Time) bool {
	return !t.ExpireAt.After(now)
}
