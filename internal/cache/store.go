// Package cache provides an optional metrics-result cache. Results are never
// stored on the Analysis itself; the cache key is a hash of the exact input
// fields, so any field change invalidates the entry by changing its key.
package cache

import "context"

// Store is the key/value backend behind the metrics cache.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
