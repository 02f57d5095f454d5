package repository

import (
	"context"

	"pricecheck/internal/domain/entity"
	"pricecheck/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrShopNotFound is returned when a canonical shop does not exist.
	ErrShopNotFound = errors.New("shop not found")
	// ErrProposalNotFound is returned when a proposal does not exist or is not in the expected state.
	ErrProposalNotFound = errors.New("proposal not found")
)

// ShopRepository persists canonical shops and the proposals that create them.
type ShopRepository interface {
	// FindShopByID retrieves a canonical shop.
	FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// ListShops returns every canonical shop ordered by name.
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// CreateShop inserts a canonical shop.
	CreateShop(ctx context.Context, shop *entity.Shop) error

	// CreateProposal inserts a pending shop proposal.
	CreateProposal(ctx context.Context, proposal *entity.ShopProposal) error

	// FindProposalByID retrieves a shop proposal regardless of status.
	FindProposalByID(ctx context.Context, id uuid.UUID) (*entity.ShopProposal, error)

	// ListProposalsByStatus returns proposals in the given status, oldest first.
	ListProposalsByStatus(ctx context.Context, status entity.ProposalStatus) ([]*entity.ShopProposal, error)

	// SaveReview persists the proposal's review fields only if its stored
	// status is one of from. Returns ErrProposalNotFound when no row matched.
	SaveReview(ctx context.Context, proposal *entity.ShopProposal, from ...entity.ProposalStatus) error
}
