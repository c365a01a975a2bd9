package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ChangeRoleRequest struct {
	Role       string   `json:"role"`
	Categories []string `json:"categories,omitempty"`
}

// UserDetail is the superadmin administration view of a user.
type UserDetail struct {
	UserID     uuid.UUID `json:"user_id"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	Categories []string  `json:"categories,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
