package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/transitmv/linetrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/transitmv/linetrack/services/catalog CatalogUC

// CatalogUC defines the interface for reference-data reads
type CatalogUC interface {
	// ListActiveLines returns active lines ordered by id.
	ListActiveLines(ctx context.Context) ([]models.Line, error)

	// GetLineShape returns the route polyline ordered by sequence number;
	// empty when the line or its shape is absent.
	GetLineShape(ctx context.Context, lineID string) ([]models.LatLng, error)

	// DriverExists reports whether a driver id is known.
	DriverExists(ctx context.Context, driverID uuid.UUID) (bool, error)
}
