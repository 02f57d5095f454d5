package postgres

import (
	"context"

	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/errors"
	"pricecheck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewAuditRepository struct {
	db *gorm.DB
}

// NewReviewAuditRepository creates the GORM-backed audit trail.
func NewReviewAuditRepository(db *gorm.DB) repository.ReviewAuditRepository {
	return &reviewAuditRepository{db: db}
}

// Record appends an entry keyed by its message ID.
func (repo *reviewAuditRepository) Record(ctx context.Context, entry *entity.ReviewAuditEntry) error {
	entryM := fromReviewAuditDomain(entry)
	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicate, "audit message already recorded")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record review audit entry")
	}

	entry.ID = entryM.ID
	entry.RecordedAt = entryM.CreatedAt

	return nil
}

// ListByProposal returns the audit trail of one proposal, oldest first.
func (repo *reviewAuditRepository) ListByProposal(ctx context.Context, proposalID uuid.UUID) ([]*entity.ReviewAuditEntry, error) {
	var entriesM []*model.ReviewAuditModel
	err := repo.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("reviewed_at ASC").
		Order("created_at ASC").
		Find(&entriesM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list review audit entries")
	}

	entries := make([]*entity.ReviewAuditEntry, 0, len(entriesM))
	for _, entryM := range entriesM {
		entries = append(entries, toReviewAuditDomain(entryM))
	}

	return entries, nil
}

func fromReviewAuditDomain(entry *entity.ReviewAuditEntry) *model.ReviewAuditModel {
	return &model.ReviewAuditModel{
		ID:          entry.ID,
		MessageID:   entry.MessageID,
		RequestID:   entry.RequestID,
		ProposalID:  entry.ProposalID,
		Kind:        entry.Kind,
		Status:      entry.Status.String(),
		ReviewerID:  entry.ReviewerID,
		CanonicalID: entry.CanonicalID,
		ReviewedAt:  entry.ReviewedAt,
	}
}

func toReviewAuditDomain(data *model.ReviewAuditModel) *entity.ReviewAuditEntry {
	return &entity.ReviewAuditEntry{
		ID:          data.ID,
		MessageID:   data.MessageID,
		RequestID:   data.RequestID,
		ProposalID:  data.ProposalID,
		Kind:        data.Kind,
		Status:      entity.ProposalStatus(data.Status),
		ReviewerID:  data.ReviewerID,
		CanonicalID: data.CanonicalID,
		ReviewedAt:  data.ReviewedAt,
		RecordedAt:  data.CreatedAt,
	}
}
