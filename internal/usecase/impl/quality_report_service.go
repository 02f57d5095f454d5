package impl

import (
	"context"
	"log/slog"

	deliverycontext "pricecheck/internal/delivery/context"
	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/domain/scoring"
	"pricecheck/internal/errors"
	"pricecheck/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type qualityReportService struct {
	txManager         repository.TransactionManager
	priceReportRepo   repository.PriceReportRepository
	productRepo       repository.ProductRepository
	qualityReportRepo repository.QualityReportRepository
	logger            *slog.Logger
}

// QualityReportServiceParams holds dependencies for QualityReportService, injected by Fx.
type QualityReportServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	PriceReportRepo   repository.PriceReportRepository
	ProductRepo       repository.ProductRepository
	QualityReportRepo repository.QualityReportRepository
	Logger            *slog.Logger
}

// NewQualityReportService creates a new quality report service.
func NewQualityReportService(params QualityReportServiceParams) usecase.QualityReportUsecase {
	return &qualityReportService{
		txManager:         params.TxManager,
		priceReportRepo:   params.PriceReportRepo,
		productRepo:       params.ProductRepo,
		qualityReportRepo: params.QualityReportRepo,
		logger:            params.Logger,
	}
}

func (srv *qualityReportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the quality report attached to one of the caller's price reports.
func (srv *qualityReportService) Get(ctx context.Context, userID, priceReportID uuid.UUID) (*entity.QualityReport, error) {
	if _, err := srv.loadOwnedPriceReport(ctx, userID, priceReportID); err != nil {
		return nil, err
	}

	report, err := srv.qualityReportRepo.FindByPriceReportID(ctx, priceReportID)
	if errors.Is(err, repository.ErrQualityReportNotFound) {
		return nil, errors.Wrap(domainerrors.ErrQualityReportNotFound, priceReportID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load quality report")
	}

	return report, nil
}

// Upsert creates the quality report for a price report, or rewrites the
// existing one in place. The score is always recomputed from the submitted fields.
func (srv *qualityReportService) Upsert(ctx context.Context, userID uuid.UUID, input *usecase.UpsertQualityReportInput) (*usecase.UpsertQualityReportOutput, error) {
	if input.Assessment == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("assessment: is required")
	}

	priceReport, err := srv.loadOwnedPriceReport(ctx, userID, input.PriceReportID)
	if err != nil {
		return nil, err
	}

	category, err := srv.resolveCategory(ctx, priceReport.ProductAliasID)
	if err != nil {
		return nil, err
	}

	if input.Assessment.Category() != category {
		return nil, domainerrors.ErrCategoryMismatch.WithDetails(
			"product category is " + category.String() + ", got " + input.Assessment.Category().String())
	}

	if err := input.Assessment.Validate(); err != nil {
		var fieldErr *scoring.FieldError
		if errors.As(err, &fieldErr) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fieldErr.Error())
		}

		return nil, errors.Wrap(err, "failed to validate assessment")
	}

	output, err := srv.upsert(ctx, userID, input)
	if errors.Is(err, repository.ErrDuplicate) {
		// A concurrent request inserted first; the retry finds its row and updates it.
		srv.log(ctx).Warn("Quality report insert raced, retrying as update", slog.Any("priceReportID", input.PriceReportID))
		output, err = srv.upsert(ctx, userID, input)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to upsert quality report", slog.Any("priceReportID", input.PriceReportID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute quality report transaction")
	}

	srv.log(ctx).Info("Quality report saved",
		slog.Any("priceReportID", input.PriceReportID),
		slog.Bool("isUpdate", output.IsUpdate),
		slog.Float64("score", output.Report.NormalizedQualityScore),
	)

	return output, nil
}

func (srv *qualityReportService) upsert(ctx context.Context, userID uuid.UUID, input *usecase.UpsertQualityReportInput) (*usecase.UpsertQualityReportOutput, error) {
	var output usecase.UpsertQualityReportOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		qualityRepo := repoFactory.NewQualityReportRepository()

		existing, err := qualityRepo.FindByPriceReportID(ctx, input.PriceReportID)
		switch {
		case err == nil:
			existing.Reassess(input.Assessment)
			if err := qualityRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update quality report")
			}
			output = usecase.UpsertQualityReportOutput{Report: existing, IsUpdate: true}

			return nil
		case !errors.Is(err, repository.ErrQualityReportNotFound):
			return errors.Wrap(err, "failed to look up quality report")
		}

		report := entity.NewQualityReport(input.PriceReportID, userID, input.Assessment)
		if err := qualityRepo.Create(ctx, report); err != nil {
			return errors.Wrap(err, "failed to create quality report")
		}
		output = usecase.UpsertQualityReportOutput{Report: report}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &output, nil
}

func (srv *qualityReportService) loadOwnedPriceReport(ctx context.Context, userID, priceReportID uuid.UUID) (*entity.PriceReport, error) {
	priceReport, err := srv.priceReportRepo.FindByID(ctx, priceReportID)
	if errors.Is(err, repository.ErrPriceReportNotFound) {
		return nil, errors.Wrap(domainerrors.ErrPriceReportNotFound, priceReportID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load price report")
	}

	if priceReport.UserID != userID {
		srv.log(ctx).Warn("Quality report access by non-owner", slog.Any("priceReportID", priceReportID), slog.Any("userID", userID))

		return nil, errors.Wrap(domainerrors.ErrPriceReportOwnership, "price report belongs to another user")
	}

	return priceReport, nil
}

func (srv *qualityReportService) resolveCategory(ctx context.Context, aliasID uuid.UUID) (scoring.Category, error) {
	alias, err := srv.productRepo.FindAliasByID(ctx, aliasID)
	if errors.Is(err, repository.ErrProductAliasNotFound) {
		return "", errors.Wrap(domainerrors.ErrProductAliasNotFound, aliasID.String())
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load product alias")
	}

	if !alias.Category.IsValid() {
		return "", errors.Wrapf(domainerrors.ErrInternalError, "product %s has unknown category %q", alias.ProductID, alias.Category)
	}

	return alias.Category, nil
}
