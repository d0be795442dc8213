// Package cache stores rendered chart artifacts between runs.
//
// A [Cache] is a byte store with optional expiry. Three backends exist:
//
//   - [FileCache]: one JSON entry file per key under a directory, used by the CLI
//   - [RedisCache]: a shared Redis instance, for teams rendering the same data
//   - [NullCache]: stores nothing, used when caching is disabled
//
// Keys come from a [Keyer], which derives them from content hashes of the
// data table and the render settings, so a changed input never hits a stale
// entry.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and whether key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 7 * 24 * time.Hour
