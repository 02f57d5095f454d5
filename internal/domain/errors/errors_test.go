package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflictErrors(t *testing.T) {
	tests := []struct {
		err  *BaseError
		code string
	}{
		{err: ErrUserAlreadyExists, code: "USER_ALREADY_EXISTS"},
		{err: ErrDuplicateCanonical, code: "DUPLICATE_CANONICAL"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, http.StatusConflict, tt.err.HTTPCode())
			assert.Equal(t, tt.code, tt.err.ErrorCode())
		})
	}
}

func TestBaseError_WithDetailsKeepsCode(t *testing.T) {
	detailed := ErrDuplicateCanonical.WithDetails("alias widget")

	assert.NotSame(t, ErrDuplicateCanonical, detailed)
	assert.Equal(t, "alias widget", detailed.Details())
	assert.Equal(t, ErrDuplicateCanonical.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrDuplicateCanonical.Details())
}
