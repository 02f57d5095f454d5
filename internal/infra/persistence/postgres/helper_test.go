package postgres

import (
	"context"
	"testing"
	"time"

	"pricecheck/internal/domain/entity"
	"pricecheck/internal/domain/scoring"
	"pricecheck/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the production schema.
// A single connection keeps the database alive and serializes transactions.
func newTestDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

type fixture struct {
	user    *entity.User
	shop    *entity.Shop
	product *entity.Product
	alias   *entity.ProductAlias
}

func seedFixture(t *testing.T, db *gorm.DB, category scoring.Category) fixture {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash", UserType: entity.UserTypeUser}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	shop := &entity.Shop{Name: "Corner Store", Address: "1 Main St", Latitude: 25.03, Longitude: 121.56}
	require.NoError(t, NewShopRepository(db).CreateShop(ctx, shop))

	productM := &model.ProductModel{CanonicalName: "Widget " + category.String(), Category: category.String()}
	require.NoError(t, db.Create(productM).Error)

	alias := &entity.ProductAlias{ProductID: productM.ID, AliasName: "widget"}
	require.NoError(t, NewProductRepository(db).CreateAlias(ctx, alias))

	return fixture{
		user:    user,
		shop:    shop,
		product: toProductDomain(productM),
		alias:   alias,
	}
}

func seedPriceReport(t *testing.T, db *gorm.DB, f fixture, reportedAt time.Time) *entity.PriceReport {
	t.Helper()

	report := &entity.PriceReport{
		UserID:         f.user.ID,
		ShopID:         f.shop.ID,
		ProductAliasID: f.alias.ID,
		PricePaid:      19.99,
		Quantity:       1,
		ReportedAt:     reportedAt,
	}
	require.NoError(t, NewPriceReportRepository(db).Create(context.Background(), report))

	return report
}
