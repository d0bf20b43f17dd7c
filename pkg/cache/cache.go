// Package cache stores derived word-ladder results between runs.
//
// Components, distance matrices, word graphs and rendered artifacts are
// deterministic functions of a dictionary and a few options, so they can be
// keyed by a hash of both and reused. The ladder engine itself keeps no
// persisted state; only the pipeline layer consults this package.
//
// # Backends
//
//   - [FileCache]: JSON envelopes under the user cache directory (CLI default)
//   - [RedisCache]: shared cache for the HTTP server or multiple machines
//   - [MongoCache]: shared cache in a MongoDB collection with a TTL index
//   - [NullCache]: caching disabled
//
// # Keys
//
// A [Keyer] builds keys from a dictionary hash and stage options. Wrap it in
// a [ScopedKeyer] to namespace keys per tenant or environment.
package cache

import (
	"context"
	"strings"
	"time"
)

// Time-to-live values for cached entries. Results never go stale for a fixed
// dictionary, so TTLs only bound disk and memory usage.
const (
	TTLComponents = 7 * 24 * time.Hour
	TTLMatrix     = 7 * 24 * time.Hour
	TTLGraph      = 7 * 24 * time.Hour
	TTLArtifact   = 30 * 24 * time.Hour
)

// Cache is a byte-oriented key-value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// KeyKinds lists every key kind, in pipeline order.
var KeyKinds = []string{KindComponents, KindMatrix, KindGraph, KindArtifact}

// Clearer is implemented by caches that can drop the entries they hold.
// Clear removes the keys [DefaultKeyer] built under prefix, the
// [ScopedKeyer] prefix in use or "" for unscoped keys, and reports how many
// entries it removed.
type Clearer interface {
	Clear(ctx context.Context, prefix string) (int, error)
}

// hasKeyPrefix reports whether key is one of the kinds in [KeyKinds]
// under prefix.
func hasKeyPrefix(key, prefix string) bool {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok {
		return false
	}
	for _, kind := range KeyKinds {
		if strings.HasPrefix(rest, kind+":") {
			return true
		}
	}
	return false
}
