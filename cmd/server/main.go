package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	redis "github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/adapters/cache"
	"route-optimizer-service/internal/adapters/repositories"
	"route-optimizer-service/internal/api"
	"route-optimizer-service/internal/config"
	"route-optimizer-service/internal/platform/db"
	"route-optimizer-service/internal/platform/obs"
	"route-optimizer-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (postgres, redis) behind ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "data/seeds/fleet.json")

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(pg); err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stat(seedPath); err == nil {
		if err := repositories.SeedFromJSON(pg, seedPath); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Printf("seed file %q not found, skipping seed", seedPath)
	}

	// The solution cache is optional; without REDIS_URL every optimize
	// request is solved fresh.
	var solutionCache ports.SolutionCache
	if redisURL := os.Getenv("REDIS_URL"); strings.TrimSpace(redisURL) != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("parse REDIS_URL: %v", err)
		}
		solutionCache = cache.NewRedisSolutionCache(redis.NewClient(opt), 15*time.Minute)
	} else {
		log.Println("REDIS_URL not set, solution cache disabled")
	}

	obs.RegisterDefault()

	fleetRepo := repositories.NewPgFleetRepository(pg)
	locationRepo := repositories.NewPgLocationRepository(pg)
	solutionStore := repositories.NewPgSolutionStore(pg)

	router := api.NewRouter(fleetRepo, locationRepo, solutionStore, solutionCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
