package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/shop-catalog/internal/adapter/handler"
	"github.com/rl1809/shop-catalog/internal/adapter/storage"
	"github.com/rl1809/shop-catalog/internal/config"
	"github.com/rl1809/shop-catalog/internal/core/service"
	"github.com/rl1809/shop-catalog/internal/port"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	log.Println("connected to mysql")

	repo := storage.NewMySQLRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	// Cache backend: in-memory by default, Redis when configured
	var (
		cache port.CacheStore
		rdb   *redis.Client
	)
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		cache = storage.NewRedisCache(rdb)
		log.Printf("using redis cache at %s", cfg.RedisAddr)
	} else {
		cache = storage.NewMemoryCache()
		log.Println("using in-memory cache")
	}

	// Initialize services
	invalidator := service.NewInvalidator(cache)
	productQuery := service.NewProductQuery(repo, cache)
	productMutation := service.NewProductMutation(repo, invalidator)
	productSearch := service.NewProductSearch(repo, cfg.PageSize)

	var reducerOpts []service.StockReducerOption
	if cfg.AtomicStock {
		reducerOpts = append(reducerOpts, service.WithAtomicDecrement())
	}
	stockReducer := service.NewStockReducer(repo, reducerOpts...)
	orderPlacer := service.NewOrderPlacer(stockReducer, invalidator)

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(productQuery, productMutation, productSearch, orderPlacer)
	mux := http.NewServeMux()
	httpHandler.Register(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	if rdb != nil {
		rdb.Close()
	}
	db.Close()
	log.Println("connections closed")
}
