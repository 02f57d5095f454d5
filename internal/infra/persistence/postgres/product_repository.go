package postgres

import (
	"context"

	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/domain/scoring"
	"pricecheck/internal/errors"
	"pricecheck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindProductByID retrieves a product.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// ListProducts returns every product ordered by canonical name.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).Order("canonical_name ASC").Find(&productMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindAliasByID retrieves an alias joined with its product.
func (repo *productRepository) FindAliasByID(ctx context.Context, id uuid.UUID) (*entity.ProductAlias, error) {
	var aliasM model.ProductAliasModel
	err := repo.db.WithContext(ctx).
		Joins("Product").
		Where("product_aliases.id = ?", id).
		First(&aliasM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductAliasNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product alias")
	}

	return toProductAliasDomain(&aliasM), nil
}

// ListAliases returns every alias joined with its product.
func (repo *productRepository) ListAliases(ctx context.Context) ([]*entity.ProductAlias, error) {
	var aliasMs []*model.ProductAliasModel
	err := repo.db.WithContext(ctx).
		Joins("Product").
		Order("product_aliases.alias_name ASC").
		Find(&aliasMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list product aliases")
	}

	aliases := make([]*entity.ProductAlias, 0, len(aliasMs))
	for _, aliasM := range aliasMs {
		aliases = append(aliases, toProductAliasDomain(aliasM))
	}

	return aliases, nil
}

// CreateAlias inserts an approved alias.
func (repo *productRepository) CreateAlias(ctx context.Context, alias *entity.ProductAlias) error {
	aliasM := &model.ProductAliasModel{
		ID:        alias.ID,
		ProductID: alias.ProductID,
		AliasName: alias.AliasName,
	}
	if err := repo.db.WithContext(ctx).Omit("Product").Create(aliasM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicate, "product alias already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrProductNotFound, "alias references a missing product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product alias")
	}

	alias.ID = aliasM.ID
	alias.CreatedAt = aliasM.CreatedAt

	return nil
}

// CreateAliasProposal inserts a pending alias proposal.
func (repo *productRepository) CreateAliasProposal(ctx context.Context, proposal *entity.ProductAliasProposal) error {
	status := proposal.Status
	if status == "" {
		status = entity.ProposalPending
	}
	proposalM := &model.ProductAliasProposalModel{
		ID:            proposal.ID,
		ProductID:     proposal.ProductID,
		ProposedAlias: proposal.ProposedAlias,
		ProposedBy:    proposal.ProposedBy,
		Status:        status.String(),
	}
	if err := repo.db.WithContext(ctx).Omit("Product", "Proposer").Create(proposalM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrProductNotFound, "proposal references a missing product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product alias proposal")
	}

	proposal.ID = proposalM.ID
	proposal.Status = status
	proposal.CreatedAt = proposalM.CreatedAt

	return nil
}

// FindAliasProposalByID retrieves an alias proposal regardless of status.
func (repo *productRepository) FindAliasProposalByID(ctx context.Context, id uuid.UUID) (*entity.ProductAliasProposal, error) {
	var proposalM model.ProductAliasProposalModel
	err := repo.db.WithContext(ctx).
		Joins("Product").
		Where("product_alias_proposals.id = ?", id).
		First(&proposalM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProposalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product alias proposal")
	}

	return toAliasProposalDomain(&proposalM), nil
}

// ListAliasProposalsByStatus returns alias proposals in the given status, oldest first.
func (repo *productRepository) ListAliasProposalsByStatus(ctx context.Context, status entity.ProposalStatus) ([]*entity.ProductAliasProposal, error) {
	var proposalMs []*model.ProductAliasProposalModel
	err := repo.db.WithContext(ctx).
		Joins("Product").
		Where("product_alias_proposals.status = ?", status.String()).
		Order("product_alias_proposals.created_at ASC").
		Find(&proposalMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list product alias proposals")
	}

	proposals := make([]*entity.ProductAliasProposal, 0, len(proposalMs))
	for _, proposalM := range proposalMs {
		proposals = append(proposals, toAliasProposalDomain(proposalM))
	}

	return proposals, nil
}

// SaveAliasReview persists the review fields of a proposal whose stored status is one of from.
func (repo *productRepository) SaveAliasReview(ctx context.Context, proposal *entity.ProductAliasProposal, from ...entity.ProposalStatus) error {
	return saveReview(ctx, repo.db, &model.ProductAliasProposalModel{}, proposal.ID, proposal.Review, from)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		CanonicalName: data.CanonicalName,
		Category:      scoring.Category(data.Category),
		CreatedAt:     data.CreatedAt,
	}
}

func toProductAliasDomain(data *model.ProductAliasModel) *entity.ProductAlias {
	alias := &entity.ProductAlias{
		ID:        data.ID,
		ProductID: data.ProductID,
		AliasName: data.AliasName,
		CreatedAt: data.CreatedAt,
	}
	if data.Product != nil {
		alias.CanonicalName = data.Product.CanonicalName
		alias.Category = scoring.Category(data.Product.Category)
	}

	return alias
}

func toAliasProposalDomain(data *model.ProductAliasProposalModel) *entity.ProductAliasProposal {
	proposal := &entity.ProductAliasProposal{
		ID:            data.ID,
		ProductID:     data.ProductID,
		ProposedAlias: data.ProposedAlias,
		ProposedBy:    data.ProposedBy,
		Review:        toReviewDomain(data.Status, data.ReviewedBy, data.ReviewedAt),
		CreatedAt:     data.CreatedAt,
	}
	if data.Product != nil {
		proposal.CanonicalName = data.Product.CanonicalName
	}

	return proposal
}
