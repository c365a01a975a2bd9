package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateComplaintRequest struct {
	// UserID is accepted for wire compatibility with older clients but the
	// author is always taken from the verified token.
	UserID      string `json:"user_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

type CreateComplaintResponse struct {
	Message     string    `json:"message"`
	ComplaintID uuid.UUID `json:"complaint_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
	// AdminID is accepted for wire compatibility; the acting admin is always
	// taken from the verified token.
	AdminID    string `json:"admin_id,omitempty"`
	UpdateText string `json:"update_text"`
}

// ComplaintDetail is a complaint with the last updating admin resolved to a
// username.
type ComplaintDetail struct {
	ComplaintID    uuid.UUID  `json:"complaint_id"`
	UserID         uuid.UUID  `json:"user_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	PhotoURL       string     `json:"photo_url,omitempty"`
	Status         string     `json:"status"`
	UpdatedByAdmin *uuid.UUID `json:"updated_by_admin,omitempty"`
	AdminUsername  string     `json:"admin_username,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
