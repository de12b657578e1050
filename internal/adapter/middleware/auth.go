package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"loan-engine/internal/auth"
)

// JWT validates the bearer token and installs the caller's identity in the
// request context for the downstream access checks.
func JWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header must be a bearer token"})
			}

			idn, err := auth.ValidateToken(strings.TrimSpace(token), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithIdentity(req.Context(), idn)))
			return next(c)
		}
	}
}
