package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/transitmv/linetrack/internal/pkg/constants"
	"github.com/transitmv/linetrack/internal/pkg/database"
	"github.com/transitmv/linetrack/internal/pkg/logger"
	"github.com/transitmv/linetrack/internal/pkg/models"
	"github.com/transitmv/linetrack/services/catalog"
)

// CatalogUC implements the catalog.CatalogUC interface. Lines and shapes are
// read-mostly, so reads go through a short-TTL Redis cache with a Postgres
// fallback on any miss or cache error.
type CatalogUC struct {
	repo        catalog.CatalogRepo
	redisClient *database.RedisClient
}

// NewCatalogUC creates a new catalog usecase instance
func NewCatalogUC(repo catalog.CatalogRepo, redisClient *database.RedisClient) *CatalogUC {
	return &CatalogUC{
		repo:        repo,
		redisClient: redisClient,
	}
}

// ListActiveLines returns active lines ordered by id
func (uc *CatalogUC) ListActiveLines(ctx context.Context) ([]models.Line, error) {
	var lines []models.Line
	if uc.cacheGet(ctx, constants.KeyActiveLines, &lines) {
		return lines, nil
	}

	lines, err := uc.repo.ListActiveLines(ctx)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []models.Line{}
	}

	uc.cacheSet(ctx, constants.KeyActiveLines, lines)
	return lines, nil
}

// GetLineShape returns the polyline for a line; empty for unknown lines
func (uc *CatalogUC) GetLineShape(ctx context.Context, lineID string) ([]models.LatLng, error) {
	key := fmt.Sprintf(constants.KeyLineShape, lineID)

	var points []models.LatLng
	if uc.cacheGet(ctx, key, &points) {
		return points, nil
	}

	points, err := uc.repo.GetLineShape(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []models.LatLng{}
	}

	uc.cacheSet(ctx, key, points)
	return points, nil
}

// DriverExists reports whether a driver id is known. Existence checks are not
// cached; the HEAD endpoint is cheap and staleness here would lie.
func (uc *CatalogUC) DriverExists(ctx context.Context, driverID uuid.UUID) (bool, error) {
	return uc.repo.DriverExists(ctx, driverID)
}

// cacheGet reports whether the key was present and decoded; any cache error
// is treated as a miss.
func (uc *CatalogUC) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if uc.redisClient == nil {
		return false
	}

	raw, err := uc.redisClient.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Warn("Failed to decode cached catalog entry",
			logger.String("key", key),
			logger.Err(err))
		return false
	}
	return true
}

func (uc *CatalogUC) cacheSet(ctx context.Context, key string, value interface{}) {
	if uc.redisClient == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := uc.redisClient.Set(ctx, key, data, constants.CatalogCacheTTL); err != nil {
		logger.Warn("Failed to cache catalog entry",
			logger.String("key", key),
			logger.Err(err))
	}
}
