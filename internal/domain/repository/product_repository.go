package repository

import (
	"context"

	"pricecheck/internal/domain/entity"
	"pricecheck/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductAliasNotFound is returned when a product alias does not exist.
	ErrProductAliasNotFound = errors.New("product alias not found")
)

// ProductRepository persists products, their approved aliases and alias proposals.
type ProductRepository interface {
	// FindProductByID retrieves a product.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns every product ordered by canonical name.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// FindAliasByID retrieves an alias joined with its product.
	FindAliasByID(ctx context.Context, id uuid.UUID) (*entity.ProductAlias, error)

	// ListAliases returns every alias joined with its product.
	ListAliases(ctx context.Context) ([]*entity.ProductAlias, error)

	// CreateAlias inserts an approved alias. Returns ErrDuplicate when the
	// product already carries the same alias.
	CreateAlias(ctx context.Context, alias *entity.ProductAlias) error

	// CreateAliasProposal inserts a pending alias proposal.
	CreateAliasProposal(ctx context.Context, proposal *entity.ProductAliasProposal) error

	// FindAliasProposalByID retrieves an alias proposal regardless of status.
	FindAliasProposalByID(ctx context.Context, id uuid.UUID) (*entity.ProductAliasProposal, error)

	// ListAliasProposalsByStatus returns alias proposals in the given status, oldest first.
	ListAliasProposalsByStatus(ctx context.Context, status entity.ProposalStatus) ([]*entity.ProductAliasProposal, error)

	// SaveAliasReview persists the proposal's review fields only if its stored
	// status is one of from. Returns ErrProposalNotFound when no row matched.
	SaveAliasReview(ctx context.Context, proposal *entity.ProductAliasProposal, from ...entity.ProposalStatus) error
}
