package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/scoring"
	"pricecheck/internal/errors"
	"pricecheck/internal/infra/persistence/model"
	"pricecheck/internal/infra/persistence/postgres"
	mockSvc "pricecheck/internal/mocks/service"
	"pricecheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openWorkflowDB returns an in-memory SQLite store behind one connection, so
// concurrent transactions queue instead of interleaving.
func openWorkflowDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, userType entity.UserType) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		UserType:     userType,
	}
	require.NoError(t, postgres.NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestWorkflow_ConcurrentApproveInsertsOnce(t *testing.T) {
	db := openWorkflowDB(t)
	ctx := context.Background()

	admin := seedUser(t, db, "admin", entity.UserTypeAdmin)
	proposer := seedUser(t, db, "bob", entity.UserTypeUser)

	shopRepo := postgres.NewShopRepository(db)
	proposal := &entity.ShopProposal{
		ProposedName:    "Corner Market",
		ProposedAddress: "1 Main St",
		Latitude:        25.03,
		Longitude:       121.56,
		ProposedBy:      proposer.ID,
	}
	require.NoError(t, shopRepo.CreateProposal(ctx, proposal))

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishProposalReviewed(mock.Anything, mock.Anything).Return(nil).Once()

	srv := NewModerationService(ModerationServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		UserRepo:    postgres.NewUserRepository(db),
		ShopRepo:    shopRepo,
		ProductRepo: postgres.NewProductRepository(db),
		Publisher:   publisher,
		Config:      newTestConfig(false),
		Logger:      newDiscardLogger(),
	})

	const attempts = 2
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = srv.ApproveShop(ctx, admin.ID, proposal.ID)
		}()
	}
	wg.Wait()

	var succeeded, notFound int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domainerrors.ErrProposalNotFound):
			notFound++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, notFound)

	var shopCount int64
	require.NoError(t, db.Model(&model.ShopModel{}).Count(&shopCount).Error)
	assert.Equal(t, int64(1), shopCount)

	stored, err := shopRepo.FindProposalByID(ctx, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalApproved, stored.Status)
	assert.Equal(t, admin.ID, *stored.ReviewedBy)
}

func TestWorkflow_RejectAfterApproveIsRefused(t *testing.T) {
	db := openWorkflowDB(t)
	ctx := context.Background()

	admin := seedUser(t, db, "admin", entity.UserTypeAdmin)
	proposer := seedUser(t, db, "bob", entity.UserTypeUser)

	shopRepo := postgres.NewShopRepository(db)
	proposal := &entity.ShopProposal{ProposedName: "Kiosk", ProposedAddress: "Station", ProposedBy: proposer.ID}
	require.NoError(t, shopRepo.CreateProposal(ctx, proposal))

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishProposalReviewed(mock.Anything, mock.Anything).Return(nil).Once()

	srv := NewModerationService(ModerationServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		UserRepo:    postgres.NewUserRepository(db),
		ShopRepo:    shopRepo,
		ProductRepo: postgres.NewProductRepository(db),
		Publisher:   publisher,
		Config:      newTestConfig(false),
		Logger:      newDiscardLogger(),
	})

	_, err := srv.ApproveShop(ctx, admin.ID, proposal.ID)
	require.NoError(t, err)

	_, err = srv.RejectShop(ctx, admin.ID, proposal.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProposalNotFound))

	stored, err := shopRepo.FindProposalByID(ctx, proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalApproved, stored.Status)
}

func TestWorkflow_UpsertTwiceKeepsOneReport(t *testing.T) {
	db := openWorkflowDB(t)
	ctx := context.Background()

	owner := seedUser(t, db, "alice", entity.UserTypeUser)

	shop := &entity.Shop{Name: "Gadget Hub", Address: "2 Tech Rd", Latitude: 1, Longitude: 1}
	require.NoError(t, postgres.NewShopRepository(db).CreateShop(ctx, shop))

	productM := &model.ProductModel{CanonicalName: "Phone X", Category: scoring.CategoryElectronics.String()}
	require.NoError(t, db.Create(productM).Error)

	alias := &entity.ProductAlias{ProductID: productM.ID, AliasName: "phone x 128gb"}
	require.NoError(t, postgres.NewProductRepository(db).CreateAlias(ctx, alias))

	priceReport := &entity.PriceReport{
		UserID:         owner.ID,
		ShopID:         shop.ID,
		ProductAliasID: alias.ID,
		PricePaid:      599,
		Quantity:       1,
		ReportedAt:     time.Now().UTC(),
	}
	require.NoError(t, postgres.NewPriceReportRepository(db).Create(ctx, priceReport))

	srv := NewQualityReportService(QualityReportServiceParams{
		TxManager:         postgres.NewTransactionManager(db),
		PriceReportRepo:   postgres.NewPriceReportRepository(db),
		ProductRepo:       postgres.NewProductRepository(db),
		QualityReportRepo: postgres.NewQualityReportRepository(db),
		Logger:            newDiscardLogger(),
	})

	honored := true
	first, err := srv.Upsert(ctx, owner.ID, &usecase.UpsertQualityReportInput{
		PriceReportID: priceReport.ID,
		Assessment: scoring.Electronics{
			DeviceFunctional:       true,
			AuthenticityConfidence: 5,
			ConditionMatch:         5,
			WarrantyHonored:        &honored,
			AccessoriesComplete:    true,
		},
	})
	require.NoError(t, err)
	assert.False(t, first.IsUpdate)
	assert.InDelta(t, 1.0, first.Report.NormalizedQualityScore, 1e-9)

	second, err := srv.Upsert(ctx, owner.ID, &usecase.UpsertQualityReportInput{
		PriceReportID: priceReport.ID,
		Assessment: scoring.Electronics{
			DeviceFunctional:       true,
			AuthenticityConfidence: 4,
			ConditionMatch:         5,
			AccessoriesComplete:    false,
		},
	})
	require.NoError(t, err)
	assert.True(t, second.IsUpdate)
	assert.Equal(t, first.Report.ID, second.Report.ID)

	// 1.0 - 0.08 (authenticity) - 0.05 (warranty untested) - 0.1 (accessories)
	assert.InDelta(t, 0.77, second.Report.NormalizedQualityScore, 1e-9)

	var headers, details int64
	require.NoError(t, db.Model(&model.QualityReportModel{}).Where("price_report_id = ?", priceReport.ID).Count(&headers).Error)
	require.NoError(t, db.Model(&model.ElectronicsQualityReportModel{}).Where("quality_report_id = ?", first.Report.ID).Count(&details).Error)
	assert.Equal(t, int64(1), headers)
	assert.Equal(t, int64(1), details)

	stored, err := srv.Get(ctx, owner.ID, priceReport.ID)
	require.NoError(t, err)
	assert.InDelta(t, stored.Assessment.Score(), stored.NormalizedQualityScore, 1e-9)
	assert.InDelta(t, 0.77, stored.NormalizedQualityScore, 1e-9)

	_, err = srv.Get(ctx, uuid.New(), priceReport.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrPriceReportOwnership))
}
