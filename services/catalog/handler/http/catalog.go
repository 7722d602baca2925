package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/transitmv/linetrack/internal/pkg/logger"
	"github.com/transitmv/linetrack/internal/utils"
	"github.com/transitmv/linetrack/services/catalog"
)

// CatalogHandler handles HTTP requests for reference data
type CatalogHandler struct {
	catalogUC catalog.CatalogUC
}

// NewCatalogHandler creates a new catalog HTTP handler
func NewCatalogHandler(catalogUC catalog.CatalogUC) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
	}
}

// ListLines returns active lines as a bare JSON array ordered by id
func (h *CatalogHandler) ListLines(c echo.Context) error {
	lines, err := h.catalogUC.ListActiveLines(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list lines", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list lines")
	}

	return c.JSON(http.StatusOK, lines)
}

// GetLineShape returns the route polyline as a bare JSON array; empty for an
// unknown line or a line without shape points.
func (h *CatalogHandler) GetLineShape(c echo.Context) error {
	lineID := c.Param("line_id")
	if lineID == "" {
		return utils.ValidationErrorResponse(c, "line_id is required")
	}

	points, err := h.catalogUC.GetLineShape(c.Request().Context(), lineID)
	if err != nil {
		logger.Error("Failed to get line shape",
			logger.String("line_id", lineID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get line shape")
	}

	return c.JSON(http.StatusOK, points)
}

// HeadDriver answers 204 when the driver exists and 404 otherwise
func (h *CatalogHandler) HeadDriver(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("driver_id"))
	if err != nil {
		return utils.ValidationErrorResponse(c, "invalid driver id")
	}

	exists, err := h.catalogUC.DriverExists(c.Request().Context(), driverID)
	if err != nil {
		logger.Error("Failed to check driver",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to check driver")
	}
	if !exists {
		return c.NoContent(http.StatusNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}
