// Package cache stores results of slow host queries between runs.
//
// Measuring an element through an external editor process takes seconds, and
// users tend to stamp the same drawing repeatedly while tuning options. Query
// results are keyed by a hash of the document bytes, so any edit to the
// drawing invalidates its entries.
//
//	c, err := cache.NewFileCache(dir)
//	key := cache.BoundsKey(cache.Hash(svg), "inkscape", "rect12")
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// DefaultBoundsTTL bounds how long a measured box is trusted.
const DefaultBoundsTTL = 7 * 24 * time.Hour

// BoundsKey builds the cache key for a bounding-box query. docHash is the
// [Hash] of the document bytes, backend names the query backend, and id is
// the selected element ("" for the canvas).
func BoundsKey(docHash, backend, id string) string {
	return hashKey("bounds", docHash, backend, id)
}
