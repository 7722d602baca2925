package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/transitmv/linetrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/transitmv/linetrack/services/location LocationRepo

// LocationRepo defines the interface for location data access operations
type LocationRepo interface {
	// GetActiveAssignment returns the driver's active assignment, or nil
	// when none exists. Read-only, no side effects.
	GetActiveAssignment(ctx context.Context, driverID uuid.UUID) (*models.AssignmentRef, error)

	// InsertLocation appends one immutable fix and fills in the
	// server-assigned id.
	InsertLocation(ctx context.Context, loc *models.Location) error

	// GetLatestByLine returns one most-recent fix per vehicle on the line.
	GetLatestByLine(ctx context.Context, lineID string) ([]models.Location, error)
}
