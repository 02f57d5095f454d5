package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewAuditModel mirrors the 'review_audit_entries' table. Rows are append-only.
type ReviewAuditModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MessageID   string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	RequestID   string     `gorm:"type:varchar(64)"`
	ProposalID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind        string     `gorm:"type:varchar(20);not null"`
	Status      string     `gorm:"type:varchar(20);not null"`
	ReviewerID  uuid.UUID  `gorm:"type:uuid;not null"`
	CanonicalID *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt  time.Time  `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewAuditModel) TableName() string {
	return "review_audit_entries"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ReviewAuditModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
