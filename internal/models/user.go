package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles recognized by the visibility engine. Anything else sees nothing.
const (
	RoleUser       = "user"
	RoleObserver   = "observer"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleObserver, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username  string         `gorm:"not null;size:100;uniqueIndex" json:"username"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"size:20;not null;default:'user'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Categories []Category `gorm:"many2many:category_assignments;" json:"-"`
}
