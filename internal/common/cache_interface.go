package common

import "time"

// CacheInterface is the read-through cache shared by the catalog services.
// Two backends implement it: an in-process store for single-node deploys
// and a Redis client for anything load balanced.
type CacheInterface interface {
	// Set stores value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get reports the cached value for key, or nil and false on a miss.
	Get(key string) (interface{}, bool)

	// Delete drops key if present.
	Delete(key string)

	// GetOrSet returns the cached value for key, running loader and
	// storing its result on a miss. Typed callers go through
	// GetOrSetTyped instead of asserting the result themselves.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any backing connections.
	Close() error
}
