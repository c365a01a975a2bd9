package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named routing bucket for complaints. Admins are scoped to one
// or more categories through the category_assignments join table.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
	Name        string    `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryAssignment is the admin <-> category relation. Rows are only ever
// replaced wholesale by a superadmin role change, never patched one at a time.
type CategoryAssignment struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
}
