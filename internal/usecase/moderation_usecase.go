package usecase

import (
	"context"

	"pricecheck/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopApproval is the result of approving a shop proposal.
type ShopApproval struct {
	Proposal *entity.ShopProposal
	Shop     *entity.Shop
}

// AliasApproval is the result of approving a product alias proposal.
type AliasApproval struct {
	Proposal *entity.ProductAliasProposal
	Alias    *entity.ProductAlias
}

// ModerationUsecase is the admin-only review workflow for proposals.
// Every method fails with PermissionDenied unless reviewerID belongs to an admin.
type ModerationUsecase interface {
	ListPendingShops(ctx context.Context, reviewerID uuid.UUID) ([]*entity.ShopProposal, error)
	ApproveShop(ctx context.Context, reviewerID, proposalID uuid.UUID) (*ShopApproval, error)
	RejectShop(ctx context.Context, reviewerID, proposalID uuid.UUID) (*entity.ShopProposal, error)

	ListPendingAliases(ctx context.Context, reviewerID uuid.UUID) ([]*entity.ProductAliasProposal, error)
	ApproveAlias(ctx context.Context, reviewerID, proposalID uuid.UUID) (*AliasApproval, error)
	RejectAlias(ctx context.Context, reviewerID, proposalID uuid.UUID) (*entity.ProductAliasProposal, error)
}
