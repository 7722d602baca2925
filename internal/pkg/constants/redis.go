package constants

import "time"

// Redis key formats and TTLs for the catalog cache. Catalog data is
// read-mostly, so short TTLs keep staleness bounded without invalidation
// plumbing.
const (
	// KeyLineShape caches the ordered polyline of a line: line:{id}:shape
	KeyLineShape = "line:%s:shape"

	// KeyActiveLines caches the active-lines listing
	KeyActiveLines = "lines:active"

	CatalogCacheTTL = 5 * time.Minute
)
