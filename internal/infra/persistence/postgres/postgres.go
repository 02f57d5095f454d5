package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"pricecheck/config"
	"pricecheck/internal/domain/lifecycle"
	"pricecheck/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the pricecheck store. Constraint violations are translated into
// gorm.ErrDuplicatedKey and friends so the repositories can map them to domain errors.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-step writes (approvals, quality report upserts) run in txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, params.Config.Database)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if monitor != nil {
				go monitor.run(monitorCtx, sqlDB)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor samples sql.DBStats and reports connection waits between samples.
type poolMonitor struct {
	logger    *slog.Logger
	interval  time.Duration
	warnAfter time.Duration
}

// newPoolMonitor returns nil when monitoring is disabled.
func newPoolMonitor(logger *slog.Logger, cfg *config.DatabaseConfig) *poolMonitor {
	if logger == nil || cfg == nil || cfg.PoolMonitorInterval <= 0 {
		return nil
	}

	return &poolMonitor{
		logger:    logger.With(slog.String("component", "postgres_pool")),
		interval:  cfg.PoolMonitorInterval,
		warnAfter: cfg.PoolWaitWarnThreshold,
	}
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe logs the waits that happened between two samples. Nothing is logged
// when no caller had to wait for a connection.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= m.warnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waitCountDelta", waits),
		slog.Duration("waitDurationDelta", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
