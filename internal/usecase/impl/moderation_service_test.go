package impl

import (
	"context"
	"testing"
	"time"

	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/domain/service"
	"pricecheck/internal/errors"
	mockRepo "pricecheck/internal/mocks/repository"
	mockSvc "pricecheck/internal/mocks/service"
	"pricecheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedReviewTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type moderationServiceFixtures struct {
	service     *moderationService
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	shopRepo    *mockRepo.MockShopRepository
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockEventPublisher
	factory     *mockRepo.MockRepositoryFactory
	txShopRepo  *mockRepo.MockShopRepository
	txProdRepo  *mockRepo.MockProductRepository
}

func createTestModerationService(t *testing.T, allowRejectReviewed bool) moderationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	uc := NewModerationService(ModerationServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		ShopRepo:    shopRepo,
		ProductRepo: productRepo,
		Publisher:   publisher,
		Config:      newTestConfig(allowRejectReviewed),
		Logger:      newDiscardLogger(),
	})
	srv := uc.(*moderationService)
	srv.now = func() time.Time { return fixedReviewTime }

	return moderationServiceFixtures{
		service:     srv,
		txManager:   txManager,
		userRepo:    userRepo,
		shopRepo:    shopRepo,
		productRepo: productRepo,
		publisher:   publisher,
		factory:     mockRepo.NewMockRepositoryFactory(t),
		txShopRepo:  mockRepo.NewMockShopRepository(t),
		txProdRepo:  mockRepo.NewMockProductRepository(t),
	}
}

func (fx moderationServiceFixtures) expectAdmin(reviewerID uuid.UUID) {
	fx.userRepo.EXPECT().FindByID(mock.Anything, reviewerID).
		Return(&entity.User{ID: reviewerID, UserType: entity.UserTypeAdmin}, nil)
}

func (fx moderationServiceFixtures) expectShopTx() {
	fx.factory.EXPECT().NewShopRepository().Return(fx.txShopRepo)
	expectTransaction(fx.txManager, fx.factory)
}

func (fx moderationServiceFixtures) expectAliasTx() {
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProdRepo)
	expectTransaction(fx.txManager, fx.factory)
}

func pendingShopProposal() *entity.ShopProposal {
	return &entity.ShopProposal{
		ID:              uuid.New(),
		ProposedName:    "Corner Market",
		ProposedAddress: "1 Main St",
		Latitude:        25.03,
		Longitude:       121.56,
		ProposedBy:      uuid.New(),
		Review:          entity.Review{Status: entity.ProposalPending},
	}
}

func pendingAliasProposal() *entity.ProductAliasProposal {
	return &entity.ProductAliasProposal{
		ID:            uuid.New(),
		ProductID:     uuid.New(),
		ProposedAlias: "Panadol 500",
		ProposedBy:    uuid.New(),
		Review:        entity.Review{Status: entity.ProposalPending},
		CanonicalName: "Paracetamol 500mg",
	}
}

func TestModerationService_NonAdminIsAlwaysDenied(t *testing.T) {
	calls := map[string]func(srv usecase.ModerationUsecase, reviewerID uuid.UUID) error{
		"ListPendingShops": func(srv usecase.ModerationUsecase, id uuid.UUID) error {
			_, err := srv.ListPendingShops(context.Background(), id)
			return err
		},
		"ApproveShop": func(srv usecase.ModerationUsecase, id uuid.UUID) error {
			_, err := srv.ApproveShop(context.Background(), id, uuid.New())
			return err
		},
		"RejectShop": func(srv usecase.ModerationUsecase, id uuid.UUID) error {
			_, err := srv.RejectShop(context.Background(), id, uuid.New())
			return err
		},
		"ListPendingAliases": func(srv usecase.ModerationUsecase, id uuid.UUID) error {
			_, err := srv.ListPendingAliases(context.Background(), id)
			return err
		},
		"ApproveAlias": func(srv usecase.ModerationUsecase, id uuid.UUID) error {
			_, err := srv.ApproveAlias(context.Background(), id, uuid.New())
			return err
		},
		"RejectAlias": func(srv usecase.ModerationUsecase, id uuid.UUID) error {
			_, err := srv.RejectAlias(context.Background(), id, uuid.New())
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			fx := createTestModerationService(t, true)
			reviewerID := uuid.New()

			fx.userRepo.EXPECT().FindByID(mock.Anything, reviewerID).
				Return(&entity.User{ID: reviewerID, UserType: entity.UserTypeUser}, nil)

			assertAppError(t, call(fx.service, reviewerID), domainerrors.ErrPermissionDenied)
		})
	}
}

func TestModerationService_UnknownReviewerIsDenied(t *testing.T) {
	fx := createTestModerationService(t, false)
	reviewerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(mock.Anything, reviewerID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.ListPendingShops(context.Background(), reviewerID)

	assertAppError(t, err, domainerrors.ErrPermissionDenied)
}

func TestModerationService_ListPendingShops(t *testing.T) {
	fx := createTestModerationService(t, false)
	reviewerID := uuid.New()
	proposals := []*entity.ShopProposal{pendingShopProposal()}

	fx.expectAdmin(reviewerID)
	fx.shopRepo.EXPECT().ListProposalsByStatus(mock.Anything, entity.ProposalPending).Return(proposals, nil)

	result, err := fx.service.ListPendingShops(context.Background(), reviewerID)

	require.NoError(t, err)
	assert.Equal(t, proposals, result)
}

func TestModerationService_ApproveShop_Success(t *testing.T) {
	fx := createTestModerationService(t, false)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposal := pendingShopProposal()
	shopID := uuid.New()

	fx.expectAdmin(reviewerID)
	fx.expectShopTx()
	fx.txShopRepo.EXPECT().FindProposalByID(ctx, proposal.ID).Return(proposal, nil)
	fx.txShopRepo.EXPECT().
		SaveReview(ctx, proposal, entity.ProposalPending).
		Run(func(_ context.Context, p *entity.ShopProposal, _ ...entity.ProposalStatus) {
			assert.Equal(t, entity.ProposalApproved, p.Status)
			assert.Equal(t, reviewerID, *p.ReviewedBy)
			assert.Equal(t, fixedReviewTime, *p.ReviewedAt)
		}).
		Return(nil)
	fx.txShopRepo.EXPECT().
		CreateShop(ctx, mock.AnythingOfType("*entity.Shop")).
		Run(func(_ context.Context, shop *entity.Shop) {
			assert.Equal(t, "Corner Market", shop.Name)
			assert.Equal(t, "1 Main St", shop.Address)
			shop.ID = shopID
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishProposalReviewed(ctx, mock.AnythingOfType("*service.ProposalReviewedEvent")).
		Run(func(_ context.Context, event *service.ProposalReviewedEvent) {
			assert.Equal(t, service.ProposalKindShop, event.Kind)
			assert.Equal(t, proposal.ID.String(), event.ProposalID)
			assert.Equal(t, "approved", event.Status)
			assert.Equal(t, reviewerID.String(), event.ReviewerID)
			assert.Equal(t, shopID.String(), event.CanonicalID)
			assert.Equal(t, fixedReviewTime, event.ReviewedAt)
		}).
		Return(nil)

	result, err := fx.service.ApproveShop(ctx, reviewerID, proposal.ID)

	require.NoError(t, err)
	assert.Equal(t, shopID, result.Shop.ID)
	assert.Equal(t, entity.ProposalApproved, result.Proposal.Status)
}

func TestModerationService_ApproveShop_AlreadyReviewed(t *testing.T) {
	fx := createTestModerationService(t, false)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposal := pendingShopProposal()
	proposal.Status = entity.ProposalRejected

	fx.expectAdmin(reviewerID)
	fx.expectShopTx()
	fx.txShopRepo.EXPECT().FindProposalByID(ctx, proposal.ID).Return(proposal, nil)

	result, err := fx.service.ApproveShop(ctx, reviewerID, proposal.ID)

	assert.Nil(t, result)
	assertAppError(t, err, domainerrors.ErrProposalNotFound)
}

func TestModerationService_ApproveShop_LostRace(t *testing.T) {
	fx := createTestModerationService(t, false)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposal := pendingShopProposal()

	fx.expectAdmin(reviewerID)
	fx.expectShopTx()
	fx.txShopRepo.EXPECT().FindProposalByID(ctx, proposal.ID).Return(proposal, nil)
	fx.txShopRepo.EXPECT().SaveReview(ctx, proposal, entity.ProposalPending).Return(repository.ErrProposalNotFound)

	result, err := fx.service.ApproveShop(ctx, reviewerID, proposal.ID)

	assert.Nil(t, result)
	assertAppError(t, err, domainerrors.ErrProposalNotFound)
	fx.txShopRepo.AssertNotCalled(t, "CreateShop", mock.Anything, mock.Anything)
}

func TestModerationService_ApproveShop_MissingProposal(t *testing.T) {
	fx := createTestModerationService(t, false)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposalID := uuid.New()

	fx.expectAdmin(reviewerID)
	fx.expectShopTx()
	fx.txShopRepo.EXPECT().FindProposalByID(ctx, proposalID).Return(nil, repository.ErrProposalNotFound)

	_, err := fx.service.ApproveShop(ctx, reviewerID, proposalID)

	assertAppError(t, err, domainerrors.ErrProposalNotFound)
}

func TestModerationService_ApproveShop_PublishFailureIsNotSurfaced(t *testing.T) {
	fx := createTestModerationService(t, false)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposal := pendingShopProposal()

	fx.expectAdmin(reviewerID)
	fx.expectShopTx()
	fx.txShopRepo.EXPECT().FindProposalByID(ctx, proposal.ID).Return(proposal, nil)
	fx.txShopRepo.EXPECT().SaveReview(ctx, proposal, entity.ProposalPending).Return(nil)
	fx.txShopRepo.EXPECT().CreateShop(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)
	fx.publisher.EXPECT().PublishProposalReviewed(ctx, mock.Anything).Return(errors.New("broker unavailable"))

	result, err := fx.service.ApproveShop(ctx, reviewerID, proposal.ID)

	require.NoError(t, err)
	assert.NotNil(t, result.Shop)
}

func TestModerationService_RejectShop_RequiresPending(t *testing.T) {
	fx := createTestModerationService(t, false)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposal := pendingShopProposal()
	proposal.Status = entity.ProposalApproved

	fx.expectAdmin(reviewerID)
	fx.expectShopTx()
	fx.txShopRepo.EXPECT().FindProposalByID(ctx, proposal.ID).Return(proposal, nil)

	_, err := fx.service.RejectShop(ctx, reviewerID, proposal.ID)

	assertAppError(t, err, domainerrors.ErrProposalNotFound)
}

func TestModerationService_RejectShop_Pending(t *testing.T) {
	fx := createTestModerationService(t, false)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposal := pendingShopProposal()

	fx.expectAdmin(reviewerID)
	fx.expectShopTx()
	fx.txShopRepo.EXPECT().FindProposalByID(ctx, proposal.ID).Return(proposal, nil)
	fx.txShopRepo.EXPECT().SaveReview(ctx, proposal, entity.ProposalPending).Return(nil)
	fx.publisher.EXPECT().
		PublishProposalReviewed(ctx, mock.AnythingOfType("*service.ProposalReviewedEvent")).
		Run(func(_ context.Context, event *service.ProposalReviewedEvent) {
			assert.Equal(t, "rejected", event.Status)
			assert.Empty(t, event.CanonicalID)
		}).
		Return(nil)

	result, err := fx.service.RejectShop(ctx, reviewerID, proposal.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ProposalRejected, result.Status)
}

func TestModerationService_RejectShop_AllowReviewedDropsGuard(t *testing.T) {
	fx := createTestModerationService(t, true)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposal := pendingShopProposal()
	proposal.Status = entity.ProposalApproved

	fx.expectAdmin(reviewerID)
	fx.expectShopTx()
	fx.txShopRepo.EXPECT().FindProposalByID(ctx, proposal.ID).Return(proposal, nil)
	fx.txShopRepo.EXPECT().SaveReview(ctx, proposal).Return(nil)
	fx.publisher.EXPECT().PublishProposalReviewed(ctx, mock.Anything).Return(nil)

	result, err := fx.service.RejectShop(ctx, reviewerID, proposal.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ProposalRejected, result.Status)
}

func TestModerationService_ApproveAlias_Success(t *testing.T) {
	fx := createTestModerationService(t, false)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposal := pendingAliasProposal()

	fx.expectAdmin(reviewerID)
	fx.expectAliasTx()
	fx.txProdRepo.EXPECT().FindAliasProposalByID(ctx, proposal.ID).Return(proposal, nil)
	fx.txProdRepo.EXPECT().SaveAliasReview(ctx, proposal, entity.ProposalPending).Return(nil)
	fx.txProdRepo.EXPECT().
		CreateAlias(ctx, mock.AnythingOfType("*entity.ProductAlias")).
		Run(func(_ context.Context, alias *entity.ProductAlias) {
			assert.Equal(t, proposal.ProductID, alias.ProductID)
			assert.Equal(t, "Panadol 500", alias.AliasName)
			alias.ID = uuid.New()
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishProposalReviewed(ctx, mock.AnythingOfType("*service.ProposalReviewedEvent")).
		Run(func(_ context.Context, event *service.ProposalReviewedEvent) {
			assert.Equal(t, service.ProposalKindProductAlias, event.Kind)
		}).
		Return(nil)

	result, err := fx.service.ApproveAlias(ctx, reviewerID, proposal.ID)

	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", result.Alias.CanonicalName)
	assert.Equal(t, entity.ProposalApproved, result.Proposal.Status)
}

func TestModerationService_ApproveAlias_DuplicateCanonical(t *testing.T) {
	fx := createTestModerationService(t, false)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposal := pendingAliasProposal()

	fx.expectAdmin(reviewerID)
	fx.expectAliasTx()
	fx.txProdRepo.EXPECT().FindAliasProposalByID(ctx, proposal.ID).Return(proposal, nil)
	fx.txProdRepo.EXPECT().SaveAliasReview(ctx, proposal, entity.ProposalPending).Return(nil)
	fx.txProdRepo.EXPECT().
		CreateAlias(ctx, mock.AnythingOfType("*entity.ProductAlias")).
		Return(errors.Wrap(repository.ErrDuplicate, "product alias already exists"))

	result, err := fx.service.ApproveAlias(ctx, reviewerID, proposal.ID)

	assert.Nil(t, result)
	assertAppError(t, err, domainerrors.ErrDuplicateCanonical)
}

func TestModerationService_RejectAlias_Pending(t *testing.T) {
	fx := createTestModerationService(t, false)
	ctx := context.Background()
	reviewerID := uuid.New()
	proposal := pendingAliasProposal()

	fx.expectAdmin(reviewerID)
	fx.expectAliasTx()
	fx.txProdRepo.EXPECT().FindAliasProposalByID(ctx, proposal.ID).Return(proposal, nil)
	fx.txProdRepo.EXPECT().SaveAliasReview(ctx, proposal, entity.ProposalPending).Return(nil)
	fx.publisher.EXPECT().PublishProposalReviewed(ctx, mock.Anything).Return(nil)

	result, err := fx.service.RejectAlias(ctx, reviewerID, proposal.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ProposalRejected, result.Status)
	assert.Equal(t, reviewerID, *result.ReviewedBy)
}
