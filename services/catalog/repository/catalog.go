package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/transitmv/linetrack/internal/pkg/models"
	"github.com/transitmv/linetrack/services/catalog"
)

// CatalogRepo implements catalog.CatalogRepo against Postgres
type CatalogRepo struct {
	db *sqlx.DB
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

var _ catalog.CatalogRepo = (*CatalogRepo)(nil)

// ListActiveLines returns active lines ordered by id
func (r *CatalogRepo) ListActiveLines(ctx context.Context) ([]models.Line, error) {
	query := `
		SELECT id, name, color_hex, is_active
		FROM lines
		WHERE is_active = TRUE
		ORDER BY id
	`

	var lines []models.Line
	if err := r.db.SelectContext(ctx, &lines, query); err != nil {
		return nil, fmt.Errorf("failed to list lines: %w", err)
	}

	return lines, nil
}

// GetLineShape returns the polyline for a line ordered by sequence number.
// An unknown line simply yields no rows.
func (r *CatalogRepo) GetLineShape(ctx context.Context, lineID string) ([]models.LatLng, error) {
	query := `
		SELECT lat, lng
		FROM line_shapes
		WHERE line_id = $1
		ORDER BY seq
	`

	var points []models.LatLng
	if err := r.db.SelectContext(ctx, &points, query, lineID); err != nil {
		return nil, fmt.Errorf("failed to get line shape: %w", err)
	}

	return points, nil
}

// DriverExists reports whether a driver id is known
func (r *CatalogRepo) DriverExists(ctx context.Context, driverID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM drivers WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, driverID); err != nil {
		return false, fmt.Errorf("failed to check driver existence: %w", err)
	}

	return exists, nil
}
