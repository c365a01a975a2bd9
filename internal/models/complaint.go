package models

import (
	"time"

	"github.com/google/uuid"
)

// Complaint statuses form a closed, monotonic state machine:
// Pending -> {InProgress, Resolved, Rejected}, InProgress -> {Resolved,
// Rejected}. Resolved and Rejected are terminal.
const (
	StatusPending    = "Pending"
	StatusInProgress = "InProgress"
	StatusResolved   = "Resolved"
	StatusRejected   = "Rejected"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// ValidTransition reports whether a complaint may move from -> to.
func ValidTransition(from, to string) bool {
	if !ValidStatus(to) {
		return false
	}
	switch from {
	case StatusPending:
		return to != StatusPending
	case StatusInProgress:
		return to == StatusResolved || to == StatusRejected
	}
	// Resolved / Rejected are terminal.
	return false
}

// Complaint is a filed ticket. The category is stored by name: categories may
// be deleted unconditionally by a superadmin, and a dangling name must not
// break reads of old complaints.
type Complaint struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"complaint_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string     `gorm:"not null;size:255" json:"title"`
	Description    string     `gorm:"not null;type:text" json:"description"`
	Category       string     `gorm:"not null;size:100;index" json:"category"`
	PhotoURL       string     `gorm:"size:500" json:"photo_url,omitempty"`
	Status         string     `gorm:"not null;size:20;default:'Pending'" json:"status"`
	UpdatedByAdmin *uuid.UUID `gorm:"type:uuid" json:"updated_by_admin,omitempty"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Author User `gorm:"foreignKey:UserID" json:"-"`
}
