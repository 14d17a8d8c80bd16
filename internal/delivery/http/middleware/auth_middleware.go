package middleware

import (
	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Identity headers carried by every authenticated request.
const (
	HeaderXUserID      = "X-User-ID"
	HeaderXAccessToken = "X-Access-Token"
)

// AuthMiddleware guards routes behind a live session check. It trusts nothing
// but the token cache: every request pays one lookup, so a revoked or expired
// session is rejected immediately rather than at some future refresh.
type AuthMiddleware struct {
	uc usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(uc usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{uc: uc}
}

// Authenticate validates the identity headers against the session cache.
// Missing or malformed headers are rejected without touching the cache. A
// cache outage propagates as an error so the response is an operational
// failure, not a misleading 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userIDHeader := c.Request().Header.Get(HeaderXUserID)
		token := c.Request().Header.Get(HeaderXAccessToken)

		if userIDHeader == "" || token == "" {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Missing authentication headers")
		}

		userID, err := uuid.Parse(userIDHeader)
		if err != nil {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Invalid user ID format")
		}

		ok, err := m.uc.IsAuthenticated(c.Request().Context(), userID, token)
		if err != nil {
			return errors.WithStack(err)
		}
		if !ok {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Invalid or expired session")
		}

		// Set identity on the context for handlers to use
		c.Set("userID", userID)
		c.Set("accessToken", token)

		return next(c)
	}
}
