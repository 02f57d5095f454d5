package usecase

import (
	"context"

	"pricecheck/internal/domain/entity"

	"github.com/google/uuid"
)

// ProposeShopInput carries a user-submitted candidate shop.
type ProposeShopInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// ProposeProductAliasInput carries a user-submitted alternative product name.
type ProposeProductAliasInput struct {
	ProductID uuid.UUID
	AliasName string
}

// ProposalUsecase accepts proposals from regular users.
type ProposalUsecase interface {
	ProposeShop(ctx context.Context, userID uuid.UUID, input *ProposeShopInput) (*entity.ShopProposal, error)
	ProposeProductAlias(ctx context.Context, userID uuid.UUID, input *ProposeProductAliasInput) (*entity.ProductAliasProposal, error)
}
