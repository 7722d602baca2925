package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/transitmv/linetrack/internal/pkg/logger"
	"github.com/transitmv/linetrack/internal/pkg/models"
	"github.com/transitmv/linetrack/internal/utils"
	"github.com/transitmv/linetrack/services/location"
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	repo location.LocationRepo
	gw   location.LocationGW
}

// NewLocationUC creates a new location usecase instance
func NewLocationUC(repo location.LocationRepo, gw location.LocationGW) *LocationUC {
	return &LocationUC{
		repo: repo,
		gw:   gw,
	}
}

// IngestLocation validates one fix, fills vehicle/line from the driver's
// active assignment when absent, and appends it to the store. The row is
// durably visible to reads once this returns nil.
func (uc *LocationUC) IngestLocation(ctx context.Context, fix *models.LocationIngest) error {
	if err := validateIngest(fix); err != nil {
		return err
	}

	vehicleID := fix.VehicleID
	lineID := fix.LineID

	// Resolution happens only after the input contract holds. A race with an
	// assignment change between this read and the insert is tolerated.
	if vehicleID == nil || lineID == nil {
		assign, err := uc.repo.GetActiveAssignment(ctx, fix.DriverID)
		if err != nil {
			return fmt.Errorf("failed to resolve active assignment: %w", err)
		}
		if assign != nil {
			if vehicleID == nil {
				v := assign.VehicleID
				vehicleID = &v
			}
			if lineID == nil {
				l := assign.LineID
				lineID = &l
			}
		}
		// No assignment: both stay nil, the write still proceeds.
	}

	source := fix.Source
	if source == "" {
		source = models.DefaultLocationSource
	}

	loc := &models.Location{
		DriverID:    fix.DriverID,
		VehicleID:   vehicleID,
		LineID:      lineID,
		Lat:         *fix.Lat,
		Lng:         *fix.Lng,
		AccuracyM:   fix.AccuracyM,
		SpeedMPS:    fix.SpeedMPS,
		HeadingDeg:  fix.HeadingDeg,
		TimestampMS: *fix.TimestampMS,
		ReceivedAt:  time.Now().UTC(),
		Source:      source,
	}

	if err := uc.repo.InsertLocation(ctx, loc); err != nil {
		return fmt.Errorf("failed to store location: %w", err)
	}

	// Best-effort fan-out; the fix is already durable.
	event := models.LocationEvent{
		ID:          loc.ID,
		DriverID:    loc.DriverID,
		VehicleID:   loc.VehicleID,
		LineID:      loc.LineID,
		Lat:         loc.Lat,
		Lng:         loc.Lng,
		TimestampMS: loc.TimestampMS,
		Geohash:     utils.EncodePoint(loc.Lat, loc.Lng),
		Source:      loc.Source,
	}
	if err := uc.gw.PublishLocationIngested(ctx, event); err != nil {
		logger.Warn("Failed to publish location event",
			logger.String("driver_id", loc.DriverID.String()),
			logger.Err(err))
	}

	return nil
}

// LatestPositions returns the most recent fix per vehicle on a line. An
// unknown line yields an empty slice, not an error.
func (uc *LocationUC) LatestPositions(ctx context.Context, lineID string) ([]models.Location, error) {
	locations, err := uc.repo.GetLatestByLine(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest positions: %w", err)
	}
	if locations == nil {
		locations = []models.Location{}
	}
	return locations, nil
}

func validateIngest(fix *models.LocationIngest) error {
	if fix == nil {
		return fmt.Errorf("%w: empty payload", location.ErrValidation)
	}
	if fix.DriverID == uuid.Nil {
		return fmt.Errorf("%w: driver_id is required", location.ErrValidation)
	}
	if fix.Lat == nil {
		return fmt.Errorf("%w: lat is required", location.ErrValidation)
	}
	if fix.Lng == nil {
		return fmt.Errorf("%w: lng is required", location.ErrValidation)
	}
	if fix.TimestampMS == nil {
		return fmt.Errorf("%w: timestamp_ms is required", location.ErrValidation)
	}
	if *fix.Lat < -90 || *fix.Lat > 90 {
		return fmt.Errorf("%w: lat must be between -90 and 90", location.ErrValidation)
	}
	if *fix.Lng < -180 || *fix.Lng > 180 {
		return fmt.Errorf("%w: lng must be between -180 and 180", location.ErrValidation)
	}
	if fix.HeadingDeg != nil && (*fix.HeadingDeg < 0 || *fix.HeadingDeg > 360) {
		return fmt.Errorf("%w: heading_deg must be between 0 and 360", location.ErrValidation)
	}
	return nil
}
