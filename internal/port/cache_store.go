package port

import "context"

// CacheStore is a key to serialized-value mapping with explicit deletion
// as the only eviction. Operations never fail from the caller's point of
// view: a backend that can error must absorb the error and report a miss.
type CacheStore interface {
	// Has reports whether key is present.
	Has(ctx context.Context, key string) bool

	// Get returns the serialized value for key, or false on miss.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a pre-serialized value under key, replacing any
	// previous value.
	Set(ctx context.Context, key string, value []byte)

	// DeleteMany removes every given key. Absent keys are ignored.
	DeleteMany(ctx context.Context, keys ...string)
}
