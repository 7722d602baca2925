package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/transitmv/linetrack/services/location/handler/http"
)

// Handler coordinates the HTTP handlers for the location service
type Handler struct {
	locationHandler *http.LocationHandler
}

// NewHandler creates and initializes the location handlers
func NewHandler(locationHandler *http.LocationHandler) *Handler {
	return &Handler{
		locationHandler: locationHandler,
	}
}

// RegisterRoutes registers the location routes on the (already authenticated)
// v1 group.
func (h *Handler) RegisterRoutes(v1 *echo.Group) {
	v1.POST("/locations", h.locationHandler.IngestLocation)
	v1.GET("/lines/:line_id/latest", h.locationHandler.LatestPositions)
}
