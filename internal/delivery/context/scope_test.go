package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestID(t *testing.T) {
	newContext := func(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
		rec := httptest.NewRecorder()

		return echo.New().NewContext(req, rec), rec
	}

	t.Run("echo store wins", func(t *testing.T) {
		c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
		SetRequestID(c, "stored")

		assert.Equal(t, "stored", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
		c, _ := newContext(req)

		assert.Equal(t, "from-ctx", GetRequestID(c))
	})

	t.Run("falls back to response header", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
		rec.Header().Set(HeaderXRequestID, "from-header")

		assert.Equal(t, "from-header", GetRequestID(c))
	})

	t.Run("generates a uuid", func(t *testing.T) {
		c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(GetRequestID(c))
		assert.NoError(t, err)
	})
}

func TestWithUserID(t *testing.T) {
	userID := uuid.New()

	t.Run("tags the request logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

		ctx = WithUserID(ctx, userID)
		GetLoggerOrDefault(ctx, slog.Default()).Info("reported")

		got, ok := GetUserIDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, userID, got)
		assert.Contains(t, buf.String(), `"user_id":"`+userID.String()+`"`)
	})

	t.Run("without a logger", func(t *testing.T) {
		ctx := WithUserID(context.Background(), userID)

		assert.Nil(t, GetLogger(ctx))
		got, ok := GetUserIDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, userID, got)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())

		assert.False(t, ok)
		assert.Empty(t, GetRequestIDFromContext(context.Background()))
	})
}
