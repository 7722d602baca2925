package models

import "github.com/google/uuid"

// AssignmentRef is the slice of an assignment the ingest path cares about:
// which vehicle and line a driver is currently operating.
type AssignmentRef struct {
	VehicleID uuid.UUID `db:"vehicle_id"`
	LineID    string    `db:"line_id"`
}
