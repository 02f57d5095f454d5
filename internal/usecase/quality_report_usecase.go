package usecase

import (
	"context"

	"pricecheck/internal/domain/entity"
	"pricecheck/internal/domain/scoring"

	"github.com/google/uuid"
)

// UpsertQualityReportInput attaches an assessment to one of the caller's price reports.
type UpsertQualityReportInput struct {
	PriceReportID uuid.UUID
	Assessment    scoring.Assessment
}

// UpsertQualityReportOutput tells the caller whether an existing report was rewritten.
type UpsertQualityReportOutput struct {
	Report   *entity.QualityReport
	IsUpdate bool
}

// QualityReportUsecase manages the single quality report a price report may own.
type QualityReportUsecase interface {
	Get(ctx context.Context, userID, priceReportID uuid.UUID) (*entity.QualityReport, error)
	Upsert(ctx context.Context, userID uuid.UUID, input *UpsertQualityReportInput) (*UpsertQualityReportOutput, error)
}
