// Package entity defines the domain entities for the todo feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Todo represents a single todo item.
type Todo struct {
	// ID is the unique identifier for the item, generated server-side.
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// Title is the item's title. It must be unique.
	Title string `gorm:"uniqueIndex;size:255;not null" json:"title"`

	// Content is the item's body text.
	Content string `gorm:"not null" json:"content"`

	// Complete reports whether the item is done.
	Complete bool `gorm:"not null;default:false" json:"complete"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the item was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a fresh UUID when none is set.
func (t *Todo) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
