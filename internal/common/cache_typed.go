package common

import (
	"encoding/json"
	"time"
)

// GetOrSetTyped runs GetOrSet and returns the cached value as T. The
// in-memory backend hands values back as they were stored, but the Redis
// backend round-trips them through JSON and yields a generic shape on a
// hit, so a failed assertion is re-decoded into the caller's type instead
// of falling back to the loader.
func GetOrSetTyped[T any](c CacheInterface, key string, duration time.Duration, loader func() (T, error)) (T, error) {
	var zero T

	val, err := c.GetOrSet(key, duration, func() (any, error) {
		return loader()
	})
	if err != nil {
		return zero, err
	}

	if typed, ok := val.(T); ok {
		return typed, nil
	}

	data, err := json.Marshal(val)
	if err != nil {
		return zero, err
	}
	var typed T
	if err := json.Unmarshal(data, &typed); err != nil {
		return zero, err
	}
	return typed, nil
}
