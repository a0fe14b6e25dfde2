package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"mandoob-route-service/internal/adapters/repositories"
	"mandoob-route-service/internal/config"
	"mandoob-route-service/internal/platform/db"
)

// dbtool initializes the Postgres schema and loads demo orders. The server
// seeds SQLite itself; this tool exists for the DATABASE_URL deployment.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	ctx := context.Background()

	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(ctx, pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/orders.json")
	log.Println("Seeding database...")
	orders, err := repositories.LoadSeedOrders(seedPath)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	repo := repositories.NewPostgresOrderRepository(pg)
	now := time.Now().UTC()
	inserted := 0
	for _, o := range orders {
		o.CreatedAt = now
		o.UpdatedAt = now
		err := repo.CreateOrder(ctx, o)
		if err != nil && !isDuplicate(err) {
			log.Fatalf("seeding failed: order %s: %v", o.ID, err)
		}
		if err == nil {
			inserted++
		}
	}
	log.Printf("Seeding complete. inserted=%d skipped=%d", inserted, len(orders)-inserted)
}

// Re-running the tool against a seeded database is fine; existing ids are
// skipped rather than treated as failures.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}
