package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/marketmind/marketmind/internal/auth"
	"github.com/marketmind/marketmind/internal/cart"
	"github.com/marketmind/marketmind/internal/config"
	"github.com/marketmind/marketmind/internal/db"
	router "github.com/marketmind/marketmind/internal/http"
	"github.com/marketmind/marketmind/internal/http/handlers"
	rl "github.com/marketmind/marketmind/internal/http/rate_limiter"
	"github.com/marketmind/marketmind/internal/kv"
	"github.com/marketmind/marketmind/internal/repo"
)

func openStore(cfg config.Config) (kv.Store, func(), error) {
	switch cfg.Storage {
	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		return kv.NewRedisStore(rdb, ctx), func() { rdb.Close() }, nil
	case config.StoragePostgres:
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store, err := kv.NewPostgresStore(database)
		if err != nil {
			database.Close()
			return nil, nil, err
		}
		return store, func() { database.Close() }, nil
	default:
		return kv.NewMemoryStore(), func() {}, nil
	}
}

// @title Marketmind API
// @version 1.0
// @description REST API for grocery inventory, sales carts and billing.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}

	if cfg.JWTSecret != "" {
		auth.SetSecret(cfg.JWTSecret)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("❌ Could not open %s storage: %v", cfg.Storage, err)
	}
	defer closeStore()

	handlers.SetProductRepo(repo.NewSnapshotProductRepository(store))
	handlers.SetBillRepo(repo.NewSnapshotBillRepository(store))
	handlers.SetCartManager(cart.NewManager())
	handlers.SetSessionService(auth.NewSessionService(store))

	go rl.StartClientCleanupLoop()

	r := router.NewRouter()
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
