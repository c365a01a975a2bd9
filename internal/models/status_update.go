package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusUpdate is one row of a complaint's audit trail. Rows are append-only:
// every accepted status transition writes exactly one, and none is ever
// mutated or deleted.
type StatusUpdate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"update_id"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;index" json:"complaint_id"`
	AdminID     uuid.UUID `gorm:"type:uuid;not null" json:"admin_id"`
	Status      string    `gorm:"not null;size:20" json:"status"`
	UpdateText  string    `gorm:"not null;size:1000" json:"update_text"`
	CreatedAt   time.Time `gorm:"index" json:"update_date"`

	Complaint Complaint `gorm:"foreignKey:ComplaintID" json:"-"`
}
