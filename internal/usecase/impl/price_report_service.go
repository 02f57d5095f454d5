package impl

import (
	"context"
	"log/slog"

	deliverycontext "pricecheck/internal/delivery/context"
	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/domain/service"
	"pricecheck/internal/errors"
	"pricecheck/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultBrowseLimit = 50
	maxBrowseLimit     = 200
)

type priceReportService struct {
	txManager       repository.TransactionManager
	priceReportRepo repository.PriceReportRepository
	qrCodeService   service.QRCodeService
	logger          *slog.Logger
}

// PriceReportServiceParams holds dependencies for PriceReportService, injected by Fx.
type PriceReportServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	PriceReportRepo repository.PriceReportRepository
	QRCodeService   service.QRCodeService
	Logger          *slog.Logger
}

// NewPriceReportService creates a new price report service.
func NewPriceReportService(params PriceReportServiceParams) usecase.PriceReportUsecase {
	return &priceReportService{
		txManager:       params.TxManager,
		priceReportRepo: params.PriceReportRepo,
		qrCodeService:   params.QRCodeService,
		logger:          params.Logger,
	}
}

func (srv *priceReportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a purchase after checking the referenced shop and alias exist.
func (srv *priceReportService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreatePriceReportInput) (*entity.PriceReport, error) {
	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	switch {
	case input.PricePaid <= 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("price_paid: must be greater than 0")
	case quantity <= 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity: must be greater than 0")
	}

	shopID, err := srv.resolveShopID(input)
	if err != nil {
		return nil, err
	}

	report := &entity.PriceReport{
		UserID:         userID,
		ShopID:         shopID,
		ProductAliasID: input.ProductAliasID,
		PricePaid:      input.PricePaid,
		Quantity:       quantity,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewShopRepository().FindShopByID(ctx, shopID); err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, shopID.String())
			}

			return errors.Wrap(err, "failed to load shop")
		}

		if _, err := repoFactory.NewProductRepository().FindAliasByID(ctx, input.ProductAliasID); err != nil {
			if errors.Is(err, repository.ErrProductAliasNotFound) {
				return errors.Wrap(domainerrors.ErrProductAliasNotFound, input.ProductAliasID.String())
			}

			return errors.Wrap(err, "failed to load product alias")
		}

		if err := repoFactory.NewPriceReportRepository().Create(ctx, report); err != nil {
			return errors.Wrap(err, "failed to create price report")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Price report creation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute price report transaction")
	}

	srv.log(ctx).Info("Price report created", slog.Any("priceReportID", report.ID), slog.Any("userID", userID))

	return report, nil
}

// resolveShopID picks the shop from the explicit id or the scanned QR payload.
// When both are given they must agree.
func (srv *priceReportService) resolveShopID(input *usecase.CreatePriceReportInput) (uuid.UUID, error) {
	if input.ShopQR == "" {
		if input.ShopID == uuid.Nil {
			return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("shop_id: is required")
		}

		return input.ShopID, nil
	}

	scanned, err := srv.qrCodeService.ParseShopQR(input.ShopQR)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("shop_qr: is not a shop QR code")
	}
	if input.ShopID != uuid.Nil && input.ShopID != scanned {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("shop_qr: does not match shop_id")
	}

	return scanned, nil
}

// ListMine returns the caller's own reports, newest first.
func (srv *priceReportService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.PriceReportSummary, error) {
	reports, err := srv.priceReportRepo.List(ctx, entity.PriceReportFilter{UserID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own price reports")
	}

	return reports, nil
}

// Browse returns reports across all users, newest first.
func (srv *priceReportService) Browse(ctx context.Context, input *usecase.BrowsePriceReportsInput) ([]*entity.PriceReportSummary, error) {
	limit := input.Limit
	switch {
	case limit < 0:
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit: must not be negative")
	case limit == 0:
		limit = defaultBrowseLimit
	case limit > maxBrowseLimit:
		limit = maxBrowseLimit
	}

	reports, err := srv.priceReportRepo.List(ctx, entity.PriceReportFilter{
		ProductID: input.ProductID,
		ShopID:    input.ShopID,
		Limit:     limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse price reports")
	}

	return reports, nil
}
