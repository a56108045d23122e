package cache

import (
	"context"
	"time"
)

// Cache is the contract for the lookup-table cache in front of the
// remote catalog. Implementations: Redis and in-process memory.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found == false means a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
