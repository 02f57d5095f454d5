package impl

import (
	"context"
	"io"
	"log/slog"

	"pricecheck/config"
	"pricecheck/internal/domain/repository"
	mockRepo "pricecheck/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(allowRejectReviewed bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Moderation: &config.ModerationConfig{
			AllowRejectReviewed: allowRejectReviewed,
		},
		Catalog: &config.CatalogConfig{
			DefaultRadiusKm: 5,
			MaxRadiusKm:     50,
		},
	}
}

// expectTransaction makes txManager run the callback against factory and
// return whatever the callback returns.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
