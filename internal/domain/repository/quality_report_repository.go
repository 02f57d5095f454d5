package repository

import (
	"context"

	"pricecheck/internal/domain/entity"
	"pricecheck/internal/errors"

	"github.com/google/uuid"
)

// ErrQualityReportNotFound is returned when a price report has no quality report.
var ErrQualityReportNotFound = errors.New("quality report not found")

// QualityReportRepository persists a quality report header with its single
// category-specific detail row.
type QualityReportRepository interface {
	// FindByPriceReportID loads the header and its detail.
	FindByPriceReportID(ctx context.Context, priceReportID uuid.UUID) (*entity.QualityReport, error)

	// Create inserts the header and the detail row. Returns ErrDuplicate when
	// the price report already has a quality report.
	Create(ctx context.Context, report *entity.QualityReport) error

	// Update rewrites the detail row and the header's updated_at. Returns
	// ErrQualityReportNotFound when no detail row exists for report.ID.
	Update(ctx context.Context, report *entity.QualityReport) error
}
