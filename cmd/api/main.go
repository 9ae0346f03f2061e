// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-api/internal/interfaces/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Build the in-memory stores. All state lives for the process lifetime
	// only; the catalog is seeded here and never mutated.
	catalogStore := catalog.NewStore()
	cartStore := cart.NewStore()
	cartService := cart.NewService(catalogStore, cartStore)

	log.Printf("Catalog seeded with %d products", len(catalogStore.Products()))

	// Connect to Redis when configured; it only backs the rate limiter
	var redisClient *goredis.Client
	if cfg.HasRedis() {
		conn, err := redis.NewConnection(cfg)
		if err != nil {
			if cfg.Security.RateLimitEnabled {
				log.Fatalf("Failed to connect to Redis: %v", err)
			}
			log.Printf("Warning: Redis unavailable, continuing without it: %v", err)
		} else {
			defer conn.Close()
			redisClient = conn.GetClient()
		}
	}

	// Create and start HTTP server
	server := http.NewServer(cfg, catalogStore, cartService, redisClient)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("Server shutdown completed")
}
