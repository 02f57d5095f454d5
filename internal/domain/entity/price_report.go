package entity

import (
	"time"

	"pricecheck/internal/domain/scoring"

	"github.com/google/uuid"
)

// PriceReport records what a user paid for a product at a shop. It is immutable once created.
type PriceReport struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ShopID         uuid.UUID
	ProductAliasID uuid.UUID
	PricePaid      float64
	Quantity       int
	ReportedAt     time.Time
}

// PriceReportSummary is the denormalized row shown when browsing price reports.
type PriceReportSummary struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ShopID          uuid.UUID
	ShopName        string
	ProductAliasID  uuid.UUID
	AliasName       string
	ProductID       uuid.UUID
	CanonicalName   string
	Category        scoring.Category
	PricePaid       float64
	Quantity        int
	ReportedAt      time.Time
	QualityReportID *uuid.UUID
	QualityScore    *float64
}

// PriceReportFilter narrows a price report listing.
type PriceReportFilter struct {
	UserID    *uuid.UUID
	ProductID *uuid.UUID
	ShopID    *uuid.UUID
	Limit     int
}
