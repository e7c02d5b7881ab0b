package storage

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisCacheSetGet(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	cache := NewRedisCache(client)

	client.Del(ctx, "test-cache-key")

	if cache.Has(ctx, "test-cache-key") {
		t.Error("expected miss before set")
	}

	cache.Set(ctx, "test-cache-key", []byte(`{"x":1}`))
	if !cache.Has(ctx, "test-cache-key") {
		t.Error("expected presence after set")
	}
	v, ok := cache.Get(ctx, "test-cache-key")
	if !ok || string(v) != `{"x":1}` {
		t.Errorf("unexpected value %q (ok=%v)", v, ok)
	}
}

func TestRedisCacheDeleteMany(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	cache := NewRedisCache(client)

	cache.Set(ctx, "test-del-a", []byte("1"))
	cache.Set(ctx, "test-del-b", []byte("2"))

	cache.DeleteMany(ctx, "test-del-a", "test-del-b", "test-del-absent")

	if cache.Has(ctx, "test-del-a") || cache.Has(ctx, "test-del-b") {
		t.Error("expected keys deleted")
	}
}

func TestRedisCacheMissReturnsFalse(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	cache := NewRedisCache(client)

	client.Del(ctx, "test-absent-key")

	if _, ok := cache.Get(ctx, "test-absent-key"); ok {
		t.Error("expected miss for absent key")
	}
}
