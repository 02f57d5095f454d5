package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "pricecheck/internal/delivery/context"
	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/errors"
	"pricecheck/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type proposalService struct {
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProposalServiceParams holds dependencies for ProposalService, injected by Fx.
type ProposalServiceParams struct {
	fx.In

	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProposalService creates a new proposal service.
func NewProposalService(params ProposalServiceParams) usecase.ProposalUsecase {
	return &proposalService{
		shopRepo:    params.ShopRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *proposalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProposeShop records a pending shop proposal.
func (srv *proposalService) ProposeShop(ctx context.Context, userID uuid.UUID, input *usecase.ProposeShopInput) (*entity.ShopProposal, error) {
	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)

	switch {
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name: is required")
	case address == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("address: is required")
	case input.Latitude < -90 || input.Latitude > 90:
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude: must be between -90 and 90")
	case input.Longitude < -180 || input.Longitude > 180:
		return nil, domainerrors.ErrValidationFailed.WithDetails("longitude: must be between -180 and 180")
	}

	proposal := &entity.ShopProposal{
		ProposedName:    name,
		ProposedAddress: address,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		ProposedBy:      userID,
		Review:          entity.Review{Status: entity.ProposalPending},
	}

	if err := srv.shopRepo.CreateProposal(ctx, proposal); err != nil {
		return nil, errors.Wrap(err, "failed to create shop proposal")
	}

	srv.log(ctx).Info("Shop proposed", slog.Any("proposalID", proposal.ID), slog.Any("userID", userID))

	return proposal, nil
}

// ProposeProductAlias records a pending alias proposal for an existing product.
func (srv *proposalService) ProposeProductAlias(ctx context.Context, userID uuid.UUID, input *usecase.ProposeProductAliasInput) (*entity.ProductAliasProposal, error) {
	alias := strings.TrimSpace(input.AliasName)
	if alias == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("alias_name: is required")
	}

	product, err := srv.productRepo.FindProductByID(ctx, input.ProductID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "cannot propose alias")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	proposal := &entity.ProductAliasProposal{
		ProductID:     product.ID,
		ProposedAlias: alias,
		ProposedBy:    userID,
		Review:        entity.Review{Status: entity.ProposalPending},
		CanonicalName: product.CanonicalName,
	}

	if err := srv.productRepo.CreateAliasProposal(ctx, proposal); err != nil {
		return nil, errors.Wrap(err, "failed to create alias proposal")
	}

	srv.log(ctx).Info("Product alias proposed",
		slog.Any("proposalID", proposal.ID),
		slog.Any("productID", product.ID),
		slog.Any("userID", userID),
	)

	return proposal, nil
}
