package impl

import (
	"context"
	"math"
	"testing"

	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/repository"
	mockRepo "pricecheck/internal/mocks/repository"
	mockSvc "pricecheck/internal/mocks/service"
	"pricecheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	shopRepo    *mockRepo.MockShopRepository
	productRepo *mockRepo.MockProductRepository
	qrCode      *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	shopRepo := mockRepo.NewMockShopRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			ShopRepo:      shopRepo,
			ProductRepo:   productRepo,
			QRCodeService: qrCode,
			Config:        newTestConfig(false),
			Logger:        newDiscardLogger(),
		}),
		shopRepo:    shopRepo,
		productRepo: productRepo,
		qrCode:      qrCode,
	}
}

// Shops roughly 30 km, 1.1 km, 1.0 km and 3.3 km from Taipei 101.
func taipeiShops() []*entity.Shop {
	return []*entity.Shop{
		{ID: uuid.New(), Name: "A Far", Latitude: 25.3037, Longitude: 121.5645},
		{ID: uuid.New(), Name: "B Near", Latitude: 25.0440, Longitude: 121.5645},
		{ID: uuid.New(), Name: "C Nearest", Latitude: 25.0340, Longitude: 121.5745},
		{ID: uuid.New(), Name: "D Mid", Latitude: 25.0637, Longitude: 121.5645},
	}
}

func TestCatalogService_ListShops_All(t *testing.T) {
	fx := createTestCatalogService(t)
	shops := taipeiShops()

	fx.shopRepo.EXPECT().ListShops(mock.Anything).Return(shops, nil)

	result, err := fx.service.ListShops(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, result, len(shops))
	for i, shop := range result {
		assert.Equal(t, shops[i].ID, shop.ID)
		assert.Zero(t, shop.DistanceKm)
	}
}

func TestCatalogService_ListShops_NearbySortedByDistance(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.shopRepo.EXPECT().ListShops(mock.Anything).Return(taipeiShops(), nil)

	result, err := fx.service.ListShops(context.Background(), &usecase.NearbyQuery{
		Latitude:  25.0340,
		Longitude: 121.5645,
	})

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "C Nearest", result[0].Name)
	assert.Equal(t, "B Near", result[1].Name)
	assert.Equal(t, "D Mid", result[2].Name)
	assert.InDelta(t, 1.0, result[0].DistanceKm, 0.1)
	assert.InDelta(t, 3.3, result[2].DistanceKm, 0.1)
}

func TestCatalogService_ListShops_RadiusIsCapped(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.shopRepo.EXPECT().ListShops(mock.Anything).Return(taipeiShops(), nil)

	result, err := fx.service.ListShops(context.Background(), &usecase.NearbyQuery{
		Latitude:  25.0340,
		Longitude: 121.5645,
		RadiusKm:  10000,
	})

	require.NoError(t, err)
	assert.Len(t, result, 4)
}

func TestCatalogService_ListShops_InvalidQuery(t *testing.T) {
	fx := createTestCatalogService(t)

	cases := map[string]*usecase.NearbyQuery{
		"latitude out of range":  {Latitude: 91},
		"longitude out of range": {Longitude: -181},
		"negative radius":        {RadiusKm: -1},
		"nan latitude":           {Latitude: math.NaN()},
		"nan longitude":          {Longitude: math.NaN()},
		"nan radius":             {RadiusKm: math.NaN()},
	}
	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fx.service.ListShops(context.Background(), query)

			assertAppError(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCatalogService_GetShopQRCode(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	shopID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.shopRepo.EXPECT().FindShopByID(ctx, shopID).Return(&entity.Shop{ID: shopID}, nil)
	fx.qrCode.EXPECT().GenerateShopQR(shopID).Return(png, nil)

	data, err := fx.service.GetShopQRCode(ctx, shopID)

	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestCatalogService_GetShopQRCode_UnknownShop(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	shopID := uuid.New()

	fx.shopRepo.EXPECT().FindShopByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)

	_, err := fx.service.GetShopQRCode(ctx, shopID)

	assertAppError(t, err, domainerrors.ErrShopNotFound)
}
