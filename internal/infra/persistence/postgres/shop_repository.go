package postgres

import (
	"context"

	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/errors"
	"pricecheck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shopRepository implements the domain.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// FindShopByID retrieves a canonical shop.
func (repo *shopRepository) FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

// ListShops returns every canonical shop ordered by name.
func (repo *shopRepository) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	var shopMs []*model.ShopModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&shopMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopMs))
	for _, shopM := range shopMs {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// CreateShop inserts a canonical shop.
func (repo *shopRepository) CreateShop(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)
	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicate, "shop already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt

	return nil
}

// CreateProposal inserts a pending shop proposal.
func (repo *shopRepository) CreateProposal(ctx context.Context, proposal *entity.ShopProposal) error {
	proposalM := fromShopProposalDomain(proposal)
	if err := repo.db.WithContext(ctx).Omit("Proposer").Create(proposalM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserNotFound, "proposer does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop proposal")
	}

	proposal.ID = proposalM.ID
	proposal.Status = entity.ProposalStatus(proposalM.Status)
	proposal.CreatedAt = proposalM.CreatedAt

	return nil
}

// FindProposalByID retrieves a shop proposal regardless of status.
func (repo *shopRepository) FindProposalByID(ctx context.Context, id uuid.UUID) (*entity.ShopProposal, error) {
	var proposalM model.ShopProposalModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&proposalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProposalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find shop proposal")
	}

	return toShopProposalDomain(&proposalM), nil
}

// ListProposalsByStatus returns proposals in the given status, oldest first.
func (repo *shopRepository) ListProposalsByStatus(ctx context.Context, status entity.ProposalStatus) ([]*entity.ShopProposal, error) {
	var proposalMs []*model.ShopProposalModel
	err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at ASC").
		Find(&proposalMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shop proposals")
	}

	proposals := make([]*entity.ShopProposal, 0, len(proposalMs))
	for _, proposalM := range proposalMs {
		proposals = append(proposals, toShopProposalDomain(proposalM))
	}

	return proposals, nil
}

// SaveReview persists the review fields of a proposal whose stored status is one of from.
func (repo *shopRepository) SaveReview(ctx context.Context, proposal *entity.ShopProposal, from ...entity.ProposalStatus) error {
	return saveReview(ctx, repo.db, &model.ShopProposalModel{}, proposal.ID, proposal.Review, from)
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	return &model.ShopModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}

func toShopProposalDomain(data *model.ShopProposalModel) *entity.ShopProposal {
	return &entity.ShopProposal{
		ID:              data.ID,
		ProposedName:    data.ProposedName,
		ProposedAddress: data.ProposedAddress,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		ProposedBy:      data.ProposedBy,
		Review:          toReviewDomain(data.Status, data.ReviewedBy, data.ReviewedAt),
		CreatedAt:       data.CreatedAt,
	}
}

func fromShopProposalDomain(data *entity.ShopProposal) *model.ShopProposalModel {
	status := data.Status
	if status == "" {
		status = entity.ProposalPending
	}

	return &model.ShopProposalModel{
		ID:              data.ID,
		ProposedName:    data.ProposedName,
		ProposedAddress: data.ProposedAddress,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		ProposedBy:      data.ProposedBy,
		Status:          status.String(),
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
	}
}
