// Package cache stores rasterized badge output between runs.
//
// Rasterization is the only expensive stage of the generator (it may shell
// out to rsvg-convert per badge and scale), so finished PNG bytes are kept in
// a local content-addressed cache. Keys hash the SVG bytes together with the
// scale and renderer name: any change to a badge, its style, or the renderer
// produces a different key, which makes stale hits impossible and eviction
// unnecessary.
package cache

import (
	"context"
	"time"
)

// Cache is the minimal interface the pipeline needs.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with an optional TTL (0 means no expiry).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}

// RasterKey builds the cache key for a rasterized badge: a hash of the SVG
// document bytes, the scale factor, and the renderer that produced the PNG.
func RasterKey(svg []byte, scale float64, renderer string) string {
	return hashKey("raster", Hash(svg), scale, renderer)
}
