package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/transitmv/linetrack/internal/pkg/models"
	"github.com/transitmv/linetrack/services/location"
)

// LocationRepo implements location.LocationRepo against Postgres
type LocationRepo struct {
	db *sqlx.DB
}

// NewLocationRepo creates a new location repository
func NewLocationRepo(db *sqlx.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

var _ location.LocationRepo = (*LocationRepo)(nil)

// GetActiveAssignment returns the active assignment for a driver, or nil when
// none exists. If the one-active-per-driver invariant is ever violated the
// latest started_at wins; multiplicity is tolerated, not raised.
func (r *LocationRepo) GetActiveAssignment(ctx context.Context, driverID uuid.UUID) (*models.AssignmentRef, error) {
	query := `
		SELECT vehicle_id, line_id
		FROM assignments
		WHERE driver_id = $1 AND is_active = TRUE
		ORDER BY started_at DESC
		LIMIT 1
	`

	var assign models.AssignmentRef
	err := r.db.GetContext(ctx, &assign, query, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}

	return &assign, nil
}

// InsertLocation appends one fix. Each call is its own implicit transaction;
// lat/lng bounds are re-checked by the table constraints.
func (r *LocationRepo) InsertLocation(ctx context.Context, loc *models.Location) error {
	query := `
		INSERT INTO locations (
			driver_id, vehicle_id, line_id, lat, lng,
			accuracy_m, speed_mps, heading_deg, timestamp_ms, received_at, source
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		loc.DriverID,
		loc.VehicleID,
		loc.LineID,
		loc.Lat,
		loc.Lng,
		loc.AccuracyM,
		loc.SpeedMPS,
		loc.HeadingDeg,
		loc.TimestampMS,
		loc.ReceivedAt,
		loc.Source,
	).Scan(&loc.ID)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}

	return nil
}

// GetLatestByLine returns one most-recent fix per vehicle on a line. The
// window scans only rows matching line_id via idx_locations_line_time; ties
// on timestamp_ms break deterministically on the larger insert id. Fixes
// without a vehicle cannot be grouped and are excluded.
func (r *LocationRepo) GetLatestByLine(ctx context.Context, lineID string) ([]models.Location, error) {
	query := `
		SELECT id, driver_id, vehicle_id, line_id, lat, lng,
		       accuracy_m, speed_mps, heading_deg, timestamp_ms, received_at, source
		FROM (
			SELECT l.*, ROW_NUMBER() OVER (
				PARTITION BY vehicle_id
				ORDER BY timestamp_ms DESC, id DESC
			) AS rn
			FROM locations l
			WHERE line_id = $1 AND vehicle_id IS NOT NULL
		) ranked
		WHERE rn = 1
	`

	var locations []models.Location
	if err := r.db.SelectContext(ctx, &locations, query, lineID); err != nil {
		return nil, fmt.Errorf("failed to get latest positions: %w", err)
	}

	return locations, nil
}
