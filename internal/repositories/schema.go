package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		barcode INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		portion_amount REAL NOT NULL,
		portion_unit TEXT NOT NULL,
		calories REAL,
		fats REAL,
		saturated_fats REAL,
		carbohydrates REAL,
		sugars REAL,
		proteins REAL,
		salt REAL,
		fiber REAL
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS virtual_fridge (
		fridge_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL UNIQUE REFERENCES users(user_id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS fridge (
		content_id INTEGER PRIMARY KEY AUTOINCREMENT,
		fridge_id INTEGER NOT NULL REFERENCES virtual_fridge(fridge_id) ON DELETE CASCADE,
		food_id INTEGER NOT NULL REFERENCES products(barcode),
		quantity REAL NOT NULL DEFAULT 0,
		UNIQUE (fridge_id, food_id)
	);`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		barcode BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		portion_amount DOUBLE PRECISION NOT NULL,
		portion_unit TEXT NOT NULL,
		calories DOUBLE PRECISION,
		fats DOUBLE PRECISION,
		saturated_fats DOUBLE PRECISION,
		carbohydrates DOUBLE PRECISION,
		sugars DOUBLE PRECISION,
		proteins DOUBLE PRECISION,
		salt DOUBLE PRECISION,
		fiber DOUBLE PRECISION
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS virtual_fridge (
		fridge_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(user_id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS fridge (
		content_id BIGSERIAL PRIMARY KEY,
		fridge_id BIGINT NOT NULL REFERENCES virtual_fridge(fridge_id) ON DELETE CASCADE,
		food_id BIGINT NOT NULL REFERENCES products(barcode),
		quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
		UNIQUE (fridge_id, food_id)
	);`,
}

// Migrate creates the products, users, virtual_fridge and fridge tables
// using the dialect of db's driver.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteSchema
	switch db.DriverName() {
	case "pgx", "postgres":
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	logger.Log.Infow("database schema ready", "driver", db.DriverName(), "tables", len(schema))
	return nil
}
