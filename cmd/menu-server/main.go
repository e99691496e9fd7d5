package main

import (
	"context"
	"log"
	"net/http"

	"menu-planner/internal/config"
	"menu-planner/internal/database"
	"menu-planner/internal/dish"
	"menu-planner/internal/kv"
	"menu-planner/internal/menu"
	"menu-planner/internal/server"
	"menu-planner/internal/shopping"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	dishRepo := dish.NewRepository(db.SQL)
	menuRepo := menu.NewRepository(db.SQL)
	generator := menu.NewGenerator(menu.DefaultRules(), nil)

	var store kv.Client
	if cfg.RedisAddr != "" {
		store, err = kv.NewRedisClient(ctx, redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}))
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	} else {
		log.Println("REDIS_ADDR not set; purchase state will not survive restarts")
		store = kv.NewMockClient()
	}

	tracker := shopping.NewPurchaseTracker(store)
	if err := tracker.Load(); err != nil {
		log.Printf("Warning: failed to load purchase state: %v", err)
	}

	handler := server.NewHandler(dishRepo, menuRepo, generator, tracker, nil)
	router := server.NewRouter(handler, mux.NewRouter(), cfg.APISecret)
	router.RegisterRoutes()

	log.Printf("Menu planner API listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, router.Handler()); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
