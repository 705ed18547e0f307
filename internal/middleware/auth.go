package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// TokenContextKey is where BearerToken stores the raw token for handlers.
const TokenContextKey = "auth_token"

// BearerToken extracts the token from the Authorization header and stores it
// in the request context. A missing or malformed header is rejected with 401
// before the handler runs; token verification itself is left to the auth
// service so expiry and signature failures are classified in one place.
func BearerToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Missing token"})
			}
			raw := strings.TrimPrefix(authHeader, "Bearer ")
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Missing token"})
			}
			c.Set(TokenContextKey, raw)
			return next(c)
		}
	}
}
