package usecase

import (
	"context"

	"pricecheck/internal/domain/entity"
	"pricecheck/internal/domain/service"

	"github.com/google/uuid"
)

// RecordReviewInput is one delivered moderation event.
type RecordReviewInput struct {
	MessageID string
	Event     *service.ProposalReviewedEvent
}

// RecordReviewOutput reports whether the delivery added a new entry.
type RecordReviewOutput struct {
	Entry     *entity.ReviewAuditEntry
	Duplicate bool
}

// AuditUsecase maintains the moderation audit trail fed by review events.
type AuditUsecase interface {
	// RecordReview stores a delivered event. Redeliveries are reported as duplicates, not errors.
	RecordReview(ctx context.Context, input *RecordReviewInput) (*RecordReviewOutput, error)

	// ListProposalHistory returns the audit trail of a proposal. Admin only.
	ListProposalHistory(ctx context.Context, reviewerID, proposalID uuid.UUID) ([]*entity.ReviewAuditEntry, error)
}
