package location

import (
	"context"

	"github.com/transitmv/linetrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/transitmv/linetrack/services/location LocationGW

// LocationGW defines the interface for publishing location events
type LocationGW interface {
	// PublishLocationIngested emits an accepted fix for downstream
	// consumers.
	PublishLocationIngested(ctx context.Context, event models.LocationEvent) error
}
