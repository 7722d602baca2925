package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/transitmv/linetrack/services/catalog/handler/http"
)

// Handler coordinates the HTTP handlers for the catalog service
type Handler struct {
	catalogHandler *http.CatalogHandler
}

// NewHandler creates and initializes the catalog handlers
func NewHandler(catalogHandler *http.CatalogHandler) *Handler {
	return &Handler{
		catalogHandler: catalogHandler,
	}
}

// RegisterRoutes registers the catalog routes on the v1 group
func (h *Handler) RegisterRoutes(v1 *echo.Group) {
	v1.GET("/lines", h.catalogHandler.ListLines)
	v1.GET("/lines/:line_id/shape", h.catalogHandler.GetLineShape)
	v1.HEAD("/drivers/:driver_id", h.catalogHandler.HeadDriver)
}
