package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLocationSource tags fixes whose payload carries no source.
const DefaultLocationSource = "driver-app"

// LocationIngest is the ingest request body for a single GPS fix. Required
// fields are pointers so a missing field is distinguishable from a zero value.
type LocationIngest struct {
	DriverID   uuid.UUID  `json:"driver_id"`
	VehicleID  *uuid.UUID `json:"vehicle_id,omitempty"`
	LineID     *string    `json:"line_id,omitempty"`
	Lat        *float64   `json:"lat"`
	Lng        *float64   `json:"lng"`
	AccuracyM  *float64   `json:"accuracy_m,omitempty"`
	SpeedMPS   *float64   `json:"speed_mps,omitempty"`
	HeadingDeg *float64   `json:"heading_deg,omitempty"`
	// Device epoch millis; stored as reported, no recency check.
	TimestampMS *int64 `json:"timestamp_ms"`
	Source      string `json:"source,omitempty"`
}

// Location is one stored, immutable fix. ReceivedAt is excluded from API
// payloads to keep them small.
type Location struct {
	ID          int64      `json:"id" db:"id"`
	DriverID    uuid.UUID  `json:"driver_id" db:"driver_id"`
	VehicleID   *uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
	LineID      *string    `json:"line_id" db:"line_id"`
	Lat         float64    `json:"lat" db:"lat"`
	Lng         float64    `json:"lng" db:"lng"`
	AccuracyM   *float64   `json:"accuracy_m" db:"accuracy_m"`
	SpeedMPS    *float64   `json:"speed_mps" db:"speed_mps"`
	HeadingDeg  *float64   `json:"heading_deg" db:"heading_deg"`
	TimestampMS int64      `json:"timestamp_ms" db:"timestamp_ms"`
	ReceivedAt  time.Time  `json:"-" db:"received_at"`
	Source      string     `json:"source" db:"source"`
}

// LocationEvent is published on NATS after a fix is accepted. Geohash gives
// downstream consumers a coarse spatial key without re-deriving it.
type LocationEvent struct {
	ID          int64      `json:"id"`
	DriverID    uuid.UUID  `json:"driver_id"`
	VehicleID   *uuid.UUID `json:"vehicle_id,omitempty"`
	LineID      *string    `json:"line_id,omitempty"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	TimestampMS int64      `json:"timestamp_ms"`
	Geohash     string     `json:"geohash"`
	Source      string     `json:"source"`
}
