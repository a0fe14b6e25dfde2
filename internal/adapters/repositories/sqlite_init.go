package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"mandoob-route-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		source_app TEXT NOT NULL,
		restaurant_name TEXT NOT NULL DEFAULT '',
		customer_name TEXT NOT NULL DEFAULT '',
		pickup_lat REAL NOT NULL,
		pickup_lng REAL NOT NULL,
		pickup_address TEXT NOT NULL DEFAULT '',
		delivery_lat REAL NOT NULL,
		delivery_lng REAL NOT NULL,
		delivery_address TEXT NOT NULL DEFAULT '',
		payout REAL NOT NULL,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_status_created
	ON orders(status, created_at);
	`

	statements := []string{
		createOrdersQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type locationSeed struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type OrderSeed struct {
	OrderID        string       `json:"order_id"`
	SourceApp      string       `json:"source_app"`
	RestaurantName string       `json:"restaurant_name"`
	CustomerName   string       `json:"customer_name"`
	Pickup         locationSeed `json:"pickup"`
	Delivery       locationSeed `json:"delivery"`
	Payout         float64      `json:"payout"`
}

// LoadSeedOrders reads and validates demo orders from a JSON file. Seeded
// orders always start pending; timestamps are assigned at insert time.
func LoadSeedOrders(jsonPath string) ([]*domain.Order, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed orders: read %q: %w", jsonPath, err)
	}

	var data []OrderSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed orders: parse json: %w", err)
	}

	orders := make([]*domain.Order, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.OrderID)
		if id == "" {
			return nil, fmt.Errorf("seed orders: item at index %d: order_id cannot be empty", i+1)
		}

		o := &domain.Order{
			ID:             id,
			SourceApp:      domain.ParseSourceApp(item.SourceApp),
			RestaurantName: item.RestaurantName,
			CustomerName:   item.CustomerName,
			Pickup: domain.Location{
				Coordinate: domain.Coordinate{Lat: item.Pickup.Lat, Lng: item.Pickup.Lng},
				Address:    item.Pickup.Address,
			},
			Delivery: domain.Location{
				Coordinate: domain.Coordinate{Lat: item.Delivery.Lat, Lng: item.Delivery.Lng},
				Address:    item.Delivery.Address,
			},
			Payout: item.Payout,
			Status: domain.StatusPending,
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("seed orders: item at index %d: %w", i+1, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Populate the database with demo orders from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	orders, err := LoadSeedOrders(jsonPath)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO orders (` + orderColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range orders {
		_, err := stmt.Exec(
			o.ID,
			string(o.SourceApp),
			o.RestaurantName,
			o.CustomerName,
			o.Pickup.Lat, o.Pickup.Lng, o.Pickup.Address,
			o.Delivery.Lat, o.Delivery.Lng, o.Delivery.Address,
			o.Payout,
			string(o.Status),
			now,
			now,
		)
		if err != nil {
			return fmt.Errorf("seed orders: insert order_id=%s: %w", o.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return nil
}
