// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the server and the catalog.
type Config struct {
	HTTPAddr        string
	MySQLDSN        string
	RedisAddr       string // empty selects the in-memory cache
	PageSize        int    // products per search page
	AtomicStock     bool   // conditional single-round-trip stock decrement
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		MySQLDSN:        getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/shopcatalog?parseTime=true"),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		PageSize:        atoienv("PRODUCT_PER_PAGE", 8),
		AtomicStock:     boolenv("ATOMIC_STOCK", false),
		ShutdownTimeout: time.Duration(atoienv("SHUTDOWN_TIMEOUT", 5)) * time.Second,
	}
}
