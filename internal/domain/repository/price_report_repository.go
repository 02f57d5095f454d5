package repository

import (
	"context"

	"pricecheck/internal/domain/entity"
	"pricecheck/internal/errors"

	"github.com/google/uuid"
)

// ErrPriceReportNotFound is returned when a price report does not exist.
var ErrPriceReportNotFound = errors.New("price report not found")

// PriceReportRepository persists immutable price reports.
type PriceReportRepository interface {
	// Create inserts a price report.
	Create(ctx context.Context, report *entity.PriceReport) error

	// FindByID retrieves a single price report.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PriceReport, error)

	// List returns denormalized reports matching filter, newest first.
	List(ctx context.Context, filter entity.PriceReportFilter) ([]*entity.PriceReportSummary, error)
}
