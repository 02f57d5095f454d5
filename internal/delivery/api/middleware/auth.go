package middleware

import (
	"strings"

	"pricecheck/config"
	"pricecheck/internal/delivery/api/response"
	deliverycontext "pricecheck/internal/delivery/context"
	"pricecheck/internal/domain/entity"
	domainerrors "pricecheck/internal/domain/errors"
	"pricecheck/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID   = "userID"
	contextKeyUserType = "userType"
)

// AuthMiddleware authenticates requests from the session cookie or a Bearer token.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   tokenSvc,
		cookieName: cfg.Auth.CookieName,
	}
}

// Authenticate rejects requests without a valid session token. The caller's
// identity is stored on the echo context for GetUserID and RequireAdmin, and on
// the request context so use case logs carry user_id.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyUserType, entity.UserType(claims.UserType))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(c.Request().Context(), claims.UserID)))

		return next(c)
	}
}

// RequireAdmin must run after Authenticate. The use cases re-check the role
// against the store; this only short-circuits obvious non-admin sessions.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userType, _ := c.Get(contextKeyUserType).(entity.UserType)
		if userType != entity.UserTypeAdmin {
			return response.HandleAppError(c, domainerrors.ErrPermissionDenied)
		}

		return next(c)
	}
}

// extractToken prefers the session cookie and falls back to the Authorization header.
func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return ""
	}

	return strings.TrimSpace(tokenString)
}

// GetUserID returns the authenticated caller set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetUserType returns the caller's account type set by Authenticate.
func GetUserType(c echo.Context) (entity.UserType, bool) {
	userType, ok := c.Get(contextKeyUserType).(entity.UserType)

	return userType, ok
}
