package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/transitmv/linetrack/internal/pkg/constants"
	"github.com/transitmv/linetrack/internal/pkg/models"
	natspkg "github.com/transitmv/linetrack/internal/pkg/nats"
	"github.com/transitmv/linetrack/services/location"
)

type locationGW struct {
	client *natspkg.Client
}

// NewLocationGW creates a new location gateway
func NewLocationGW(client *natspkg.Client) location.LocationGW {
	return &locationGW{
		client: client,
	}
}

// PublishLocationIngested publishes an accepted fix to NATS. Without a
// configured broker the event fan-out is disabled and the call is a no-op.
func (g *locationGW) PublishLocationIngested(ctx context.Context, event models.LocationEvent) error {
	if g.client == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal location event: %w", err)
	}

	return g.client.Publish(constants.SubjectLocationIngested, data)
}
