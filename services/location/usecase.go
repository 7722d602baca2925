package location

import (
	"context"

	"github.com/transitmv/linetrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/transitmv/linetrack/services/location LocationUC

// LocationUC defines the interface for location business logic
type LocationUC interface {
	// IngestLocation validates and appends one fix, resolving vehicle/line
	// from the driver's active assignment when they are absent.
	IngestLocation(ctx context.Context, fix *models.LocationIngest) error

	// LatestPositions returns the most recent fix per vehicle on a line.
	LatestPositions(ctx context.Context, lineID string) ([]models.Location, error)
}
