package storage

import (
	"context"
	"sync"
)

// MemoryCache is the default in-process CacheStore: a locked map of
// serialized values with no TTL and no eviction beyond explicit
// deletion. Growth is bounded only by invalidation traffic.
type MemoryCache struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: make(map[string][]byte)}
}

func (c *MemoryCache) Has(_ context.Context, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.m[key]
	return ok
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = value
}

func (c *MemoryCache) DeleteMany(_ context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.m, k)
	}
}

// Len reports the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
