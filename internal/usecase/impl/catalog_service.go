package impl

import (
	"context"
	"log/slog"
	"slices"

	"pricecheck/config"
	deliverycontext "pricecheck/internal/delivery/context"
	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/domain/service"
	"pricecheck/internal/errors"
	"pricecheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const metersPerKm = 1000.0

type catalogService struct {
	shopRepo        repository.ShopRepository
	productRepo     repository.ProductRepository
	qrCodeService   service.QRCodeService
	defaultRadiusKm float64
	maxRadiusKm     float64
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ShopRepo      repository.ShopRepository
	ProductRepo   repository.ProductRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	srv := &catalogService{
		shopRepo:        params.ShopRepo,
		productRepo:     params.ProductRepo,
		qrCodeService:   params.QRCodeService,
		defaultRadiusKm: 5,
		maxRadiusKm:     50,
		logger:          params.Logger,
	}
	if params.Config != nil && params.Config.Catalog != nil {
		srv.defaultRadiusKm = params.Config.Catalog.DefaultRadiusKm
		srv.maxRadiusKm = params.Config.Catalog.MaxRadiusKm
	}

	return srv
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListShops lists canonical shops, optionally restricted to a radius around a point.
func (srv *catalogService) ListShops(ctx context.Context, near *usecase.NearbyQuery) ([]*entity.NearbyShop, error) {
	var radiusKm float64
	if near != nil {
		switch {
		// Negated ranges so NaN fails too.
		case !(near.Latitude >= -90 && near.Latitude <= 90):
			return nil, domainerrors.ErrValidationFailed.WithDetails("lat: must be between -90 and 90")
		case !(near.Longitude >= -180 && near.Longitude <= 180):
			return nil, domainerrors.ErrValidationFailed.WithDetails("lon: must be between -180 and 180")
		case !(near.RadiusKm >= 0):
			return nil, domainerrors.ErrValidationFailed.WithDetails("radius_km: must not be negative")
		}

		radiusKm = near.RadiusKm
		if radiusKm == 0 {
			radiusKm = srv.defaultRadiusKm
		}
		radiusKm = min(radiusKm, srv.maxRadiusKm)
	}

	shops, err := srv.shopRepo.ListShops(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	if near == nil {
		result := make([]*entity.NearbyShop, 0, len(shops))
		for _, shop := range shops {
			result = append(result, &entity.NearbyShop{Shop: shop})
		}

		return result, nil
	}

	origin := orb.Point{near.Longitude, near.Latitude}
	result := make([]*entity.NearbyShop, 0, len(shops))
	for _, shop := range shops {
		distanceKm := geo.Distance(origin, shop.Point()) / metersPerKm
		if distanceKm <= radiusKm {
			result = append(result, &entity.NearbyShop{Shop: shop, DistanceKm: distanceKm})
		}
	}

	slices.SortStableFunc(result, func(a, b *entity.NearbyShop) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	srv.log(ctx).Debug("Nearby shop search",
		slog.Float64("radiusKm", radiusKm),
		slog.Int("candidates", len(shops)),
		slog.Int("matches", len(result)),
	)

	return result, nil
}

// GetShop returns one canonical shop.
func (srv *catalogService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindShopByID(ctx, shopID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, errors.Wrap(domainerrors.ErrShopNotFound, shopID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop")
	}

	return shop, nil
}

// GetShopQRCode renders a PNG QR code linking to the shop.
func (srv *catalogService) GetShopQRCode(ctx context.Context, shopID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateShopQR(shopID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate shop QR code", slog.Any("shopID", shopID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}

// ListProducts returns the product reference data.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListProductAliases returns approved aliases joined with their product.
func (srv *catalogService) ListProductAliases(ctx context.Context) ([]*entity.ProductAlias, error) {
	aliases, err := srv.productRepo.ListAliases(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product aliases")
	}

	return aliases, nil
}
