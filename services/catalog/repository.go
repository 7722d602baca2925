package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/transitmv/linetrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/transitmv/linetrack/services/catalog CatalogRepo

// CatalogRepo defines the interface for reference-data access
type CatalogRepo interface {
	ListActiveLines(ctx context.Context) ([]models.Line, error)
	GetLineShape(ctx context.Context, lineID string) ([]models.LatLng, error)
	DriverExists(ctx context.Context, driverID uuid.UUID) (bool, error)
}
