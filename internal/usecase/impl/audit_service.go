package impl

import (
	"context"
	"log/slog"
	"strings"

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

type auditService struct {
	userRepo  repository.UserRepository
	auditRepo repository.ReviewAuditRepository
	logger    *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	AuditRepo repository.ReviewAuditRepository
	Logger    *slog.Logger
}

// NewAuditService creates a new audit service.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		userRepo:  params.UserRepo,
		auditRepo: params.AuditRepo,
		logger:    params.Logger,
	}
}

func (srv *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordReview validates the event and appends it to the trail.
func (srv *auditService) RecordReview(ctx context.Context, input *usecase.RecordReviewInput) (*usecase.RecordReviewOutput, error) {
	entry, err := toAuditEntry(input)
	if err != nil {
		return nil, err
	}

	if err := srv.auditRepo.Record(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			srv.log(ctx).Info("Review event already recorded", slog.String("messageID", entry.MessageID))

			return &usecase.RecordReviewOutput{Entry: entry, Duplicate: true}, nil
		}

		return nil, errors.Wrap(err, "failed to record review event")
	}

	srv.log(ctx).Info("Review event recorded",
		slog.String("proposalID", entry.ProposalID.String()),
		slog.String("kind", entry.Kind),
		slog.String("status", entry.Status.String()),
	)

	return &usecase.RecordReviewOutput{Entry: entry}, nil
}

// ListProposalHistory returns the audit trail of a proposal.
func (srv *auditService) ListProposalHistory(ctx context.Context, reviewerID, proposalID uuid.UUID) ([]*entity.ReviewAuditEntry, error) {
	reviewer, err := srv.userRepo.FindByID(ctx, reviewerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrPermissionDenied, "reviewer does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reviewer")
	}
	if !reviewer.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrPermissionDenied, "admin privileges required")
	}

	entries, err := srv.auditRepo.ListByProposal(ctx, proposalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list review history")
	}

	return entries, nil
}

func toAuditEntry(input *usecase.RecordReviewInput) (*entity.ReviewAuditEntry, error) {
	if input == nil || input.Event == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event: is required")
	}
	event := input.Event

	messageID := strings.TrimSpace(input.MessageID)
	if messageID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message_id: is required")
	}

	proposalID, err := uuid.Parse(event.ProposalID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("proposal_id: must be a valid UUID")
	}
	reviewerID, err := uuid.Parse(event.ReviewerID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reviewer_id: must be a valid UUID")
	}

	switch event.Kind {
	case service.ProposalKindShop, service.ProposalKindProductAlias:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("kind: must be one of shop, product_alias")
	}

	status := entity.ProposalStatus(event.Status)
	if !status.IsTerminal() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status: must be approved or rejected")
	}

	var canonicalID *uuid.UUID
	if event.CanonicalID != "" {
		id, err := uuid.Parse(event.CanonicalID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("canonical_id: must be a valid UUID")
		}
		canonicalID = &id
	}

	return &entity.ReviewAuditEntry{
		MessageID:   messageID,
		RequestID:   event.RequestID,
		ProposalID:  proposalID,
		Kind:        string(event.Kind),
		Status:      status,
		ReviewerID:  reviewerID,
		CanonicalID: canonicalID,
		ReviewedAt:  event.ReviewedAt.UTC(),
	}, nil
}
