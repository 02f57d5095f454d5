package postgres

import (
	"context"
	"log/slog"

	"pricecheck/config"
	"pricecheck/internal/domain/lifecycle"
	"pricecheck/internal/errors"
	"pricecheck/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories use.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// MigrateParams holds dependencies for RegisterMigration, injected by Fx
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// RegisterMigration runs Migrate on startup when database.autoMigrate is enabled.
func RegisterMigration(params MigrateParams) {
	if params.Config.Database == nil || !params.Config.Database.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Running schema migration")

			return Migrate(ctx, params.DB)
		},
	})
}
