package usecase

import (
	"context"

	"pricecheck/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePriceReportInput carries a single purchase observation.
// The shop is named by ShopID or by a scanned shop QR payload. A nil Quantity defaults to 1.
type CreatePriceReportInput struct {
	ShopID         uuid.UUID
	ShopQR         string
	ProductAliasID uuid.UUID
	PricePaid      float64
	Quantity       *int
}

// BrowsePriceReportsInput filters the public price report feed.
type BrowsePriceReportsInput struct {
	ProductID *uuid.UUID
	ShopID    *uuid.UUID
	Limit     int
}

// PriceReportUsecase records and lists price reports.
type PriceReportUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreatePriceReportInput) (*entity.PriceReport, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.PriceReportSummary, error)
	Browse(ctx context.Context, input *BrowsePriceReportsInput) ([]*entity.PriceReportSummary, error)
}
