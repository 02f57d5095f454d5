package usecase

import (
	"context"

	"pricecheck/internal/domain/entity"

	"github.com/google/uuid"
)

// NearbyQuery restricts a shop listing to a circle around a point.
// A zero RadiusKm selects the configured default.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// CatalogUsecase exposes canonical reference data.
type CatalogUsecase interface {
	// ListShops returns every shop by name when near is nil, otherwise the
	// shops inside the radius ordered by distance.
	ListShops(ctx context.Context, near *NearbyQuery) ([]*entity.NearbyShop, error)
	GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)
	GetShopQRCode(ctx context.Context, shopID uuid.UUID) ([]byte, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListProductAliases(ctx context.Context) ([]*entity.ProductAlias, error)
}
