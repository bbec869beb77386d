package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Entries and the profile are owned by User.ID.
type User struct {
	ID           uuid.UUID
	Email        string // lower-cased, unique
	Name         string
	PasswordHash string // bcrypt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a stored refresh token. Only the SHA-256 hash of the raw
// token is persisted; a rotated token stays in place with RevokedAt set.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

func (t *RefreshToken) IsRevoked() bool { return t.RevokedAt != nil }

// IsExpired reports whether the token expired at or before now.
func (t *RefreshToken) IsExpired(now time.Time) bool { return !now.Before(t.ExpiresAt) }
