package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/mparraf99/inventory-api/internal/auth"
	"github.com/mparraf99/inventory-api/internal/config"
	"github.com/mparraf99/inventory-api/internal/db"
	api "github.com/mparraf99/inventory-api/internal/http"
	"github.com/mparraf99/inventory-api/internal/http/handlers"
	"github.com/mparraf99/inventory-api/internal/http/ratelimit"
	"github.com/mparraf99/inventory-api/internal/repo"
)

// @title Inventory API
// @version 1.0
// @description REST API for products and their lot-tracked batches.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load configuration:", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("could not migrate database:", err)
	}

	var revoked *auth.RevocationList
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		revoked = auth.NewRevocationList(rdb)
	} else {
		log.Println("REDIS_ADDR not set; token revocation disabled")
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)

	authLimiter := ratelimit.New(rate.Limit(1), 3)
	go authLimiter.StartCleanupLoop(time.Minute, 5*time.Minute)

	productRepo := repo.NewPostgresProductRepository(database)
	batchRepo := repo.NewPostgresBatchRepository(database)
	userRepo := repo.NewPostgresUserRepository(database)

	r := api.NewRouter(api.Deps{
		Products:    handlers.NewProductHandler(productRepo),
		Batches:     handlers.NewBatchHandler(batchRepo),
		Auth:        handlers.NewAuthHandler(userRepo, tokens, revoked),
		Tokens:      tokens,
		Revoked:     revoked,
		AuthLimiter: authLimiter,
	})

	log.Println("server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
