package health

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Status is the liveness response body
type Status struct {
	OK bool `json:"ok"`
}

// NewHealthHandler creates the liveness handler. It answers 200 regardless of
// downstream state; readiness of the store surfaces through request errors.
func NewHealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, Status{OK: true})
	}
}

// RegisterHealthEndpoints registers the health check endpoint. It stays
// outside any auth group.
func RegisterHealthEndpoints(e *echo.Echo) {
	e.GET("/health", NewHealthHandler())
}
