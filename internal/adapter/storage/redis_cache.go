package storage

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisCache is an alternative CacheStore backend for deployments that
// want the cache to survive process restarts or to bound its memory via
// Redis policies. The CacheStore contract is infallible, so every Redis
// error is logged and reported as a miss; a cache outage degrades to
// store reads, never to request failures.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Has(ctx context.Context, key string) bool {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		log.Printf("redis cache: exists %s: %v", key, err)
		return false
	}
	return n > 0
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis cache: get %s: %v", key, err)
		}
		return nil, false
	}
	return raw, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		log.Printf("redis cache: set %s: %v", key, err)
	}
}

func (c *RedisCache) DeleteMany(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("redis cache: delete %v: %v", keys, err)
	}
}
