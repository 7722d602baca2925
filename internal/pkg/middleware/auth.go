package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/transitmv/linetrack/internal/utils"
)

const bearerPrefix = "Bearer "

// BearerAuth validates the shared-secret bearer token on protected routes.
// When no key is configured the API runs open; that is the documented MVP
// trade-off, not a security posture.
func BearerAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if apiKey == "" {
				return next(c)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
				return utils.UnauthorizedResponse(c, "Missing Bearer token")
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
			if subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
