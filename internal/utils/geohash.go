package utils

import "github.com/mmcloughlin/geohash"

// GeohashPrecision gives roughly street-level cells (~150m), enough for
// coarse spatial routing of fix events.
const GeohashPrecision = 7

// EncodePoint converts a lat/lng pair to a geohash string
func EncodePoint(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, GeohashPrecision)
}

// DecodeGeohash converts a geohash string back to a lat/lng pair
func DecodeGeohash(hash string) (lat, lng float64) {
	return geohash.Decode(hash)
}
