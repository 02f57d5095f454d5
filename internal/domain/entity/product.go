package entity

import (
	"time"

	"pricecheck/internal/domain/scoring"

	"github.com/google/uuid"
)

// Product is canonical reference data; its category selects the quality schema.
type Product struct {
	ID            uuid.UUID
	CanonicalName string
	Category      scoring.Category
	CreatedAt     time.Time
}

// ProductAlias is an approved alternative name under which a product is sold.
type ProductAlias struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	AliasName string
	CreatedAt time.Time

	// Populated by listing queries that join the owning product.
	CanonicalName string
	Category      scoring.Category
}
