package repository

import (
	"context"

	"pricecheck/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewAuditRepository stores the moderation audit trail.
type ReviewAuditRepository interface {
	// Record appends an entry. Returns ErrDuplicate when the message ID was already recorded.
	Record(ctx context.Context, entry *entity.ReviewAuditEntry) error

	// ListByProposal returns the entries of one proposal, oldest first.
	ListByProposal(ctx context.Context, proposalID uuid.UUID) ([]*entity.ReviewAuditEntry, error)
}
