package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewAuditEntry is the durable record of one committed moderation decision,
// written by the audit worker from the published review event.
type ReviewAuditEntry struct {
	ID          uuid.UUID
	MessageID   string // Delivery ID; redeliveries of the same message are recorded once.
	RequestID   string
	ProposalID  uuid.UUID
	Kind        string
	Status      ProposalStatus
	ReviewerID  uuid.UUID
	CanonicalID *uuid.UUID // Shop or alias created on approval.
	ReviewedAt  time.Time
	RecordedAt  time.Time
}
