package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open opens a pgx-backed connection pool and verifies connectivity. The
// caller must have registered the pgx stdlib driver.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open database: verify connection: %w", err)
	}

	return db, nil
}
