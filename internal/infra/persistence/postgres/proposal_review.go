package postgres

import (
	"context"
	"time"

	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// saveReview writes the review columns of a proposal row, guarded by its current status.
// The status guard makes concurrent reviews of the same proposal mutually exclusive:
// the loser matches zero rows once the winner has committed.
func saveReview(ctx context.Context, db *gorm.DB, table any, id uuid.UUID, review entity.Review, from []entity.ProposalStatus) error {
	query := db.WithContext(ctx).Model(table).Where("id = ?", id)
	if len(from) > 0 {
		statuses := make([]string, 0, len(from))
		for _, s := range from {
			statuses = append(statuses, s.String())
		}
		query = query.Where("status IN ?", statuses)
	}

	updates := map[string]any{
		"status": review.Status.String(),
	}
	if review.ReviewedBy != nil {
		updates["reviewed_by"] = *review.ReviewedBy
	}
	if review.ReviewedAt != nil {
		updates["reviewed_at"] = *review.ReviewedAt
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save proposal review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProposalNotFound
	}

	return nil
}

func toReviewDomain(status string, reviewedBy *uuid.UUID, reviewedAt *time.Time) entity.Review {
	return entity.Review{
		Status:     entity.ProposalStatus(status),
		ReviewedBy: reviewedBy,
		ReviewedAt: reviewedAt,
	}
}
