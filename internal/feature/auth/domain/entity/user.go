// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user, generated server-side.
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the user's email address used for authentication.
	// It is stored lowercased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"mail"`

	// Password is the hashed password for the user.
	// It is never serialized to JSON and never stores plaintext.
	Password string `gorm:"size:255;not null" json:"-"`

	// Role is a free-form role string, "user" by default.
	Role string `gorm:"size:50;not null;default:user" json:"role"`

	// Photo is the user's avatar path.
	Photo string `gorm:"size:255;not null;default:default.png" json:"photo"`

	// Verified reports whether the email address has been confirmed.
	// There is no verification flow, so this stays false after signup.
	Verified bool `gorm:"not null;default:false" json:"verify"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID when none is set.
// IDs are never client-supplied.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
