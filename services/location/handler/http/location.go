package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/transitmv/linetrack/internal/pkg/logger"
	"github.com/transitmv/linetrack/internal/pkg/models"
	"github.com/transitmv/linetrack/internal/utils"
	"github.com/transitmv/linetrack/services/location"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// IngestLocation accepts one fix from a driver device and answers 204 with an
// empty body on success.
func (h *LocationHandler) IngestLocation(c echo.Context) error {
	var fix models.LocationIngest
	if err := c.Bind(&fix); err != nil {
		// Malformed JSON and malformed identifiers are both input-contract
		// failures.
		return utils.ValidationErrorResponse(c, "invalid request body")
	}

	if err := h.locationUC.IngestLocation(c.Request().Context(), &fix); err != nil {
		if errors.Is(err, location.ErrValidation) {
			return utils.ValidationErrorResponse(c, err.Error())
		}
		logger.Error("Failed to ingest location",
			logger.String("driver_id", fix.DriverID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to store location")
	}

	return c.NoContent(http.StatusNoContent)
}

// LatestPositions returns the most recent fix per vehicle on a line as a bare
// JSON array. An unknown line is an empty array, not an error.
func (h *LocationHandler) LatestPositions(c echo.Context) error {
	lineID := c.Param("line_id")
	if lineID == "" {
		return utils.ValidationErrorResponse(c, "line_id is required")
	}

	locations, err := h.locationUC.LatestPositions(c.Request().Context(), lineID)
	if err != nil {
		logger.Error("Failed to get latest positions",
			logger.String("line_id", lineID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to query latest positions")
	}

	return c.JSON(http.StatusOK, locations)
}
