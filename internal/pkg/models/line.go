package models

// Line is a transit line. Read-only reference data for this service; the
// catalog only ever lists active lines.
type Line struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	ColorHex *string `json:"color_hex,omitempty" db:"color_hex"`
	IsActive bool    `json:"-" db:"is_active"`
}

// LatLng is a single line-shape point. Shape points ordered by seq form the
// route polyline.
type LatLng struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}
