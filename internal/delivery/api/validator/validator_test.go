package validator

import (
	"testing"

	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rating struct {
	Score int `json:"score" validate:"min=1,max=5"`
}

type review struct {
	Title  string  `json:"title" validate:"required"`
	Kind   string  `json:"kind" validate:"oneof=a b"`
	Rating *rating `json:"rating" validate:"omitempty"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&review{Title: "ok", Kind: "a", Rating: &rating{Score: 3}}))
	})

	t.Run("reports json field paths", func(t *testing.T) {
		err := v.Validate(&review{Kind: "c", Rating: &rating{Score: 9}})
		require.Error(t, err)

		appErr, ok := errors.AsType[domainerrors.AppError](err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		assert.Contains(t, appErr.Details(), "title: is required")
		assert.Contains(t, appErr.Details(), "kind: must be one of a, b")
		assert.Contains(t, appErr.Details(), "rating.score: must be at most 5")
	})
}
