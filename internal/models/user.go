package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// The password hash and refresh token never leave the service in JSON.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	RefreshToken *string   `json:"-" db:"refresh_token"`       // Single active refresh token
	IsActive     bool      `json:"is_active" db:"is_active"`   // Deactivated users cannot authenticate
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserUpdate carries the optional fields of a profile update.
// Nil fields are left unchanged.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
