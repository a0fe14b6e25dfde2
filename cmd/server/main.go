package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"mandoob-route-service/internal/adapters/cache"
	"mandoob-route-service/internal/adapters/repositories"
	"mandoob-route-service/internal/api"
	"mandoob-route-service/internal/config"
	"mandoob-route-service/internal/ingest"
	"mandoob-route-service/internal/platform/db"
	"mandoob-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/orders.json")
	port := config.Get("PORT", "8080")
	databaseURL := config.Get("DATABASE_URL", "")
	redisAddr := config.Get("REDIS_ADDR", "")

	var repo ports.OrderRepository
	if databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		repo = repositories.NewPostgresOrderRepository(pg)
		log.Println("Using Postgres order repository")
	} else {
		sqlite, err := openSqlite(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer sqlite.Close()

		// Initialize schema and seed demo orders on startup for local runs.
		if err := initAndSeed(sqlite, seedPath); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewSqliteOrderRepository(sqlite)
		log.Printf("Using SQLite order repository path=%s", dbPath)
	}

	// Result cache is optional; without REDIS_ADDR every optimize call is
	// computed fresh.
	var resultCache *cache.RedisResultCache
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		ttl := time.Duration(config.GetInt("RESULT_CACHE_TTL_SECONDS", 300)) * time.Second
		resultCache = cache.NewRedisResultCache(client, ttl)
		log.Printf("Result cache enabled addr=%s", redisAddr)
	}

	router := api.NewRouter(repo, resultCache, ingest.NewParser(nil), ingest.NewGenerator(nil))

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sqlite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openSqlite: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqlite.Ping(); err != nil {
		return nil, fmt.Errorf("openSqlite: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqlite, nil
}

func initAndSeed(sqlite *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(sqlite); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(sqlite, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
