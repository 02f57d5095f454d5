package impl

import (
	"context"
	"log/slog"
	"time"

	"pricecheck/config"
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

// moderationService implements the ModerationUsecase interface.
type moderationService struct {
	txManager           repository.TransactionManager
	userRepo            repository.UserRepository
	shopRepo            repository.ShopRepository
	productRepo         repository.ProductRepository
	publisher           service.EventPublisher
	allowRejectReviewed bool
	now                 func() time.Time
	logger              *slog.Logger
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewModerationService creates a new moderation service.
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	allowRejectReviewed := false
	if params.Config != nil && params.Config.Moderation != nil {
		allowRejectReviewed = params.Config.Moderation.AllowRejectReviewed
	}

	return &moderationService{
		txManager:           params.TxManager,
		userRepo:            params.UserRepo,
		shopRepo:            params.ShopRepo,
		productRepo:         params.ProductRepo,
		publisher:           params.Publisher,
		allowRejectReviewed: allowRejectReviewed,
		now:                 time.Now,
		logger:              params.Logger,
	}
}

func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireAdmin re-checks the reviewer against the store; token claims alone are not trusted.
func (srv *moderationService) requireAdmin(ctx context.Context, reviewerID uuid.UUID) error {
	reviewer, err := srv.userRepo.FindByID(ctx, reviewerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrPermissionDenied, "reviewer does not exist")
	}
	if err != nil {
		return errors.Wrap(err, "failed to load reviewer")
	}

	if !reviewer.IsAdmin() {
		srv.log(ctx).Warn("Non-admin attempted moderation", slog.Any("userID", reviewerID))

		return errors.Wrap(domainerrors.ErrPermissionDenied, "moderation requires admin")
	}

	return nil
}

// rejectFrom lists the stored statuses a reject may overwrite. An empty list
// disables the status guard.
func (srv *moderationService) rejectFrom() []entity.ProposalStatus {
	if srv.allowRejectReviewed {
		return nil
	}

	return []entity.ProposalStatus{entity.ProposalPending}
}

// ListPendingShops returns shop proposals awaiting review.
func (srv *moderationService) ListPendingShops(ctx context.Context, reviewerID uuid.UUID) ([]*entity.ShopProposal, error) {
	if err := srv.requireAdmin(ctx, reviewerID); err != nil {
		return nil, err
	}

	proposals, err := srv.shopRepo.ListProposalsByStatus(ctx, entity.ProposalPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending shop proposals")
	}

	return proposals, nil
}

// ApproveShop marks a pending shop proposal approved and inserts the canonical shop in one transaction.
func (srv *moderationService) ApproveShop(ctx context.Context, reviewerID, proposalID uuid.UUID) (*usecase.ShopApproval, error) {
	if err := srv.requireAdmin(ctx, reviewerID); err != nil {
		return nil, err
	}

	var result usecase.ShopApproval
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.NewShopRepository()

		proposal, err := shopRepo.FindProposalByID(ctx, proposalID)
		if err != nil {
			return mapProposalError(err)
		}

		if err := proposal.Approve(reviewerID, srv.now().UTC()); err != nil {
			return mapProposalError(err)
		}

		// The conditional update is the race guard: a concurrent approve matches zero rows.
		if err := shopRepo.SaveReview(ctx, proposal, entity.ProposalPending); err != nil {
			return mapProposalError(err)
		}

		shop := proposal.ToShop()
		if err := shopRepo.CreateShop(ctx, shop); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return errors.Wrap(domainerrors.ErrDuplicateCanonical, err.Error())
			}

			return errors.Wrap(err, "failed to create canonical shop")
		}

		result = usecase.ShopApproval{Proposal: proposal, Shop: shop}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Shop approval failed", slog.Any("proposalID", proposalID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to approve shop proposal")
	}

	srv.log(ctx).Info("Shop proposal approved", slog.Any("proposalID", proposalID), slog.Any("shopID", result.Shop.ID))
	srv.publishReviewed(ctx, service.ProposalKindShop, proposalID, result.Proposal.Review, result.Shop.ID)

	return &result, nil
}

// RejectShop marks a shop proposal rejected.
func (srv *moderationService) RejectShop(ctx context.Context, reviewerID, proposalID uuid.UUID) (*entity.ShopProposal, error) {
	if err := srv.requireAdmin(ctx, reviewerID); err != nil {
		return nil, err
	}

	var rejected *entity.ShopProposal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.NewShopRepository()

		proposal, err := shopRepo.FindProposalByID(ctx, proposalID)
		if err != nil {
			return mapProposalError(err)
		}

		if err := proposal.Reject(reviewerID, srv.now().UTC(), srv.allowRejectReviewed); err != nil {
			return mapProposalError(err)
		}

		if err := shopRepo.SaveReview(ctx, proposal, srv.rejectFrom()...); err != nil {
			return mapProposalError(err)
		}

		rejected = proposal

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Shop rejection failed", slog.Any("proposalID", proposalID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to reject shop proposal")
	}

	srv.log(ctx).Info("Shop proposal rejected", slog.Any("proposalID", proposalID))
	srv.publishReviewed(ctx, service.ProposalKindShop, proposalID, rejected.Review, uuid.Nil)

	return rejected, nil
}

// ListPendingAliases returns product alias proposals awaiting review.
func (srv *moderationService) ListPendingAliases(ctx context.Context, reviewerID uuid.UUID) ([]*entity.ProductAliasProposal, error) {
	if err := srv.requireAdmin(ctx, reviewerID); err != nil {
		return nil, err
	}

	proposals, err := srv.productRepo.ListAliasProposalsByStatus(ctx, entity.ProposalPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending alias proposals")
	}

	return proposals, nil
}

// ApproveAlias marks a pending alias proposal approved and inserts the canonical alias in one transaction.
func (srv *moderationService) ApproveAlias(ctx context.Context, reviewerID, proposalID uuid.UUID) (*usecase.AliasApproval, error) {
	if err := srv.requireAdmin(ctx, reviewerID); err != nil {
		return nil, err
	}

	var result usecase.AliasApproval
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		proposal, err := productRepo.FindAliasProposalByID(ctx, proposalID)
		if err != nil {
			return mapProposalError(err)
		}

		if err := proposal.Approve(reviewerID, srv.now().UTC()); err != nil {
			return mapProposalError(err)
		}

		if err := productRepo.SaveAliasReview(ctx, proposal, entity.ProposalPending); err != nil {
			return mapProposalError(err)
		}

		alias := proposal.ToAlias()
		if err := productRepo.CreateAlias(ctx, alias); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicate):
				return errors.Wrap(domainerrors.ErrDuplicateCanonical, err.Error())
			case errors.Is(err, repository.ErrProductNotFound):
				return errors.Wrap(domainerrors.ErrProductNotFound, err.Error())
			}

			return errors.Wrap(err, "failed to create canonical alias")
		}
		alias.CanonicalName = proposal.CanonicalName

		result = usecase.AliasApproval{Proposal: proposal, Alias: alias}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Alias approval failed", slog.Any("proposalID", proposalID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to approve alias proposal")
	}

	srv.log(ctx).Info("Alias proposal approved", slog.Any("proposalID", proposalID), slog.Any("aliasID", result.Alias.ID))
	srv.publishReviewed(ctx, service.ProposalKindProductAlias, proposalID, result.Proposal.Review, result.Alias.ID)

	return &result, nil
}

// RejectAlias marks a product alias proposal rejected.
func (srv *moderationService) RejectAlias(ctx context.Context, reviewerID, proposalID uuid.UUID) (*entity.ProductAliasProposal, error) {
	if err := srv.requireAdmin(ctx, reviewerID); err != nil {
		return nil, err
	}

	var rejected *entity.ProductAliasProposal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		proposal, err := productRepo.FindAliasProposalByID(ctx, proposalID)
		if err != nil {
			return mapProposalError(err)
		}

		if err := proposal.Reject(reviewerID, srv.now().UTC(), srv.allowRejectReviewed); err != nil {
			return mapProposalError(err)
		}

		if err := productRepo.SaveAliasReview(ctx, proposal, srv.rejectFrom()...); err != nil {
			return mapProposalError(err)
		}

		rejected = proposal

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Alias rejection failed", slog.Any("proposalID", proposalID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to reject alias proposal")
	}

	srv.log(ctx).Info("Alias proposal rejected", slog.Any("proposalID", proposalID))
	srv.publishReviewed(ctx, service.ProposalKindProductAlias, proposalID, rejected.Review, uuid.Nil)

	return rejected, nil
}

// publishReviewed emits the audit event once the review is committed.
// Failures are logged only; the review itself already succeeded.
func (srv *moderationService) publishReviewed(ctx context.Context, kind service.ProposalKind, proposalID uuid.UUID, review entity.Review, canonicalID uuid.UUID) {
	event := &service.ProposalReviewedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		ProposalID: proposalID.String(),
		Kind:       kind,
		Status:     review.Status.String(),
	}
	if review.ReviewedBy != nil {
		event.ReviewerID = review.ReviewedBy.String()
	}
	if review.ReviewedAt != nil {
		event.ReviewedAt = *review.ReviewedAt
	}
	if canonicalID != uuid.Nil {
		event.CanonicalID = canonicalID.String()
	}

	if err := srv.publisher.PublishProposalReviewed(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish proposal reviewed event",
			slog.String("proposalID", event.ProposalID),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}

// mapProposalError converts a missing proposal or a forbidden transition into
// the 404 the moderation endpoints report.
func mapProposalError(err error) error {
	if errors.Is(err, repository.ErrProposalNotFound) || errors.Is(err, entity.ErrInvalidTransition) {
		return errors.Wrap(domainerrors.ErrProposalNotFound, err.Error())
	}

	return errors.Wrap(err, "failed to review proposal")
}
