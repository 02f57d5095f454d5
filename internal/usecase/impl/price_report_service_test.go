package impl

import (
	"context"
	"testing"

	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	"pricecheck/internal/errors"
	mockRepo "pricecheck/internal/mocks/repository"
	mockSvc "pricecheck/internal/mocks/service"
	"pricecheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type priceReportServiceFixtures struct {
	service         usecase.PriceReportUsecase
	txManager       *mockRepo.MockTransactionManager
	priceReportRepo *mockRepo.MockPriceReportRepository
	factory         *mockRepo.MockRepositoryFactory
	txShopRepo      *mockRepo.MockShopRepository
	txProductRepo   *mockRepo.MockProductRepository
	txReportRepo    *mockRepo.MockPriceReportRepository
	qrCodeService   *mockSvc.MockQRCodeService
}

func createTestPriceReportService(t *testing.T) priceReportServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	priceReportRepo := mockRepo.NewMockPriceReportRepository(t)
	qrCodeService := mockSvc.NewMockQRCodeService(t)

	return priceReportServiceFixtures{
		service: NewPriceReportService(PriceReportServiceParams{
			TxManager:       txManager,
			PriceReportRepo: priceReportRepo,
			QRCodeService:   qrCodeService,
			Logger:          newDiscardLogger(),
		}),
		qrCodeService:   qrCodeService,
		txManager:       txManager,
		priceReportRepo: priceReportRepo,
		factory:         mockRepo.NewMockRepositoryFactory(t),
		txShopRepo:      mockRepo.NewMockShopRepository(t),
		txProductRepo:   mockRepo.NewMockProductRepository(t),
		txReportRepo:    mockRepo.NewMockPriceReportRepository(t),
	}
}

func TestPriceReportService_Create_DefaultsQuantity(t *testing.T) {
	fx := createTestPriceReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreatePriceReportInput{
		ShopID:         uuid.New(),
		ProductAliasID: uuid.New(),
		PricePaid:      42.5,
	}

	fx.factory.EXPECT().NewShopRepository().Return(fx.txShopRepo)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.factory.EXPECT().NewPriceReportRepository().Return(fx.txReportRepo)
	expectTransaction(fx.txManager, fx.factory)

	fx.txShopRepo.EXPECT().FindShopByID(ctx, input.ShopID).Return(&entity.Shop{ID: input.ShopID}, nil)
	fx.txProductRepo.EXPECT().FindAliasByID(ctx, input.ProductAliasID).Return(&entity.ProductAlias{ID: input.ProductAliasID}, nil)
	fx.txReportRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PriceReport")).
		Run(func(_ context.Context, report *entity.PriceReport) {
			report.ID = uuid.New()
		}).
		Return(nil)

	report, err := fx.service.Create(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Quantity)
	assert.Equal(t, userID, report.UserID)
	assert.NotEqual(t, uuid.Nil, report.ID)
}

func TestPriceReportService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreatePriceReportInput
	}{
		{name: "zero price", input: usecase.CreatePriceReportInput{ShopID: uuid.New(), PricePaid: 0, Quantity: intPtr(1)}},
		{name: "negative price", input: usecase.CreatePriceReportInput{ShopID: uuid.New(), PricePaid: -1, Quantity: intPtr(1)}},
		{name: "negative quantity", input: usecase.CreatePriceReportInput{ShopID: uuid.New(), PricePaid: 1, Quantity: intPtr(-2)}},
		{name: "explicit zero quantity", input: usecase.CreatePriceReportInput{ShopID: uuid.New(), PricePaid: 1, Quantity: intPtr(0)}},
		{name: "no shop", input: usecase.CreatePriceReportInput{PricePaid: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPriceReportService(t)

			_, err := fx.service.Create(context.Background(), uuid.New(), &tt.input)

			assertAppError(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPriceReportService_Create_UnknownAlias(t *testing.T) {
	fx := createTestPriceReportService(t)
	ctx := context.Background()
	input := &usecase.CreatePriceReportInput{
		ShopID:         uuid.New(),
		ProductAliasID: uuid.New(),
		PricePaid:      9.99,
		Quantity:       intPtr(2),
	}

	fx.factory.EXPECT().NewShopRepository().Return(fx.txShopRepo)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	expectTransaction(fx.txManager, fx.factory)

	fx.txShopRepo.EXPECT().FindShopByID(ctx, input.ShopID).Return(&entity.Shop{ID: input.ShopID}, nil)
	fx.txProductRepo.EXPECT().FindAliasByID(ctx, input.ProductAliasID).Return(nil, repository.ErrProductAliasNotFound)

	_, err := fx.service.Create(ctx, uuid.New(), input)

	assertAppError(t, err, domainerrors.ErrProductAliasNotFound)
}

func TestPriceReportService_Create_UnknownShop(t *testing.T) {
	fx := createTestPriceReportService(t)
	ctx := context.Background()
	input := &usecase.CreatePriceReportInput{
		ShopID:         uuid.New(),
		ProductAliasID: uuid.New(),
		PricePaid:      9.99,
	}

	fx.factory.EXPECT().NewShopRepository().Return(fx.txShopRepo)
	expectTransaction(fx.txManager, fx.factory)

	fx.txShopRepo.EXPECT().FindShopByID(ctx, input.ShopID).Return(nil, repository.ErrShopNotFound)

	_, err := fx.service.Create(ctx, uuid.New(), input)

	assertAppError(t, err, domainerrors.ErrShopNotFound)
}

func TestPriceReportService_ListMine(t *testing.T) {
	fx := createTestPriceReportService(t)
	ctx := context.Background()
	userID := uuid.New()
	summaries := []*entity.PriceReportSummary{{ID: uuid.New(), UserID: userID}}

	fx.priceReportRepo.EXPECT().
		List(ctx, entity.PriceReportFilter{UserID: &userID}).
		Return(summaries, nil)

	result, err := fx.service.ListMine(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, summaries, result)
}

func TestPriceReportService_Browse_Limits(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: defaultBrowseLimit},
		{name: "explicit", limit: 10, wantLimit: 10},
		{name: "capped", limit: 5000, wantLimit: maxBrowseLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPriceReportService(t)
			ctx := context.Background()
			productID := uuid.New()

			fx.priceReportRepo.EXPECT().
				List(ctx, entity.PriceReportFilter{ProductID: &productID, Limit: tt.wantLimit}).
				Return(nil, nil)

			_, err := fx.service.Browse(ctx, &usecase.BrowsePriceReportsInput{ProductID: &productID, Limit: tt.limit})

			require.NoError(t, err)
		})
	}
}

func intPtr(v int) *int {
	return &v
}

func TestPriceReportService_Create_ResolvesShopFromQR(t *testing.T) {
	fx := createTestPriceReportService(t)
	ctx := context.Background()
	shopID := uuid.New()
	payload := `{"shop_id":"` + shopID.String() + `","type":"shop"}`
	input := &usecase.CreatePriceReportInput{
		ShopQR:         payload,
		ProductAliasID: uuid.New(),
		PricePaid:      3.5,
	}

	fx.qrCodeService.EXPECT().ParseShopQR(payload).Return(shopID, nil)
	fx.factory.EXPECT().NewShopRepository().Return(fx.txShopRepo)
	fx.factory.EXPECT().NewProductRepository().Return(fx.txProductRepo)
	fx.factory.EXPECT().NewPriceReportRepository().Return(fx.txReportRepo)
	expectTransaction(fx.txManager, fx.factory)

	fx.txShopRepo.EXPECT().FindShopByID(ctx, shopID).Return(&entity.Shop{ID: shopID}, nil)
	fx.txProductRepo.EXPECT().FindAliasByID(ctx, input.ProductAliasID).Return(&entity.ProductAlias{ID: input.ProductAliasID}, nil)
	fx.txReportRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PriceReport")).Return(nil)

	report, err := fx.service.Create(ctx, uuid.New(), input)

	require.NoError(t, err)
	assert.Equal(t, shopID, report.ShopID)
}

func TestPriceReportService_Create_RejectsBadQR(t *testing.T) {
	t.Run("unparseable payload", func(t *testing.T) {
		fx := createTestPriceReportService(t)
		fx.qrCodeService.EXPECT().ParseShopQR("garbage").Return(uuid.Nil, errors.New("failed to unmarshal QR code data"))

		_, err := fx.service.Create(context.Background(), uuid.New(), &usecase.CreatePriceReportInput{
			ShopQR: "garbage", ProductAliasID: uuid.New(), PricePaid: 1,
		})

		assertAppError(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("payload disagrees with shop id", func(t *testing.T) {
		fx := createTestPriceReportService(t)
		fx.qrCodeService.EXPECT().ParseShopQR("scanned").Return(uuid.New(), nil)

		_, err := fx.service.Create(context.Background(), uuid.New(), &usecase.CreatePriceReportInput{
			ShopID: uuid.New(), ShopQR: "scanned", ProductAliasID: uuid.New(), PricePaid: 1,
		})

		assertAppError(t, err, domainerrors.ErrValidationFailed)
	})
}
