package postgres

import (
	"context"
	"database/sql"
)

// Schema statements are idempotent so Migrate can run at every startup.
// The partial unique indexes on location_reservations are what enforce
// "one active reservation per user" and "one active hold per location"
// under concurrent inserts; the services still query first so they can
// return a specific reason, but the index has the last word.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		coin_balance  INTEGER NOT NULL DEFAULT 0 CHECK (coin_balance >= 0),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS coin_transactions (
		id               SERIAL PRIMARY KEY,
		user_id          INTEGER NOT NULL REFERENCES users(id),
		amount           INTEGER NOT NULL CHECK (amount <> 0),
		transaction_type TEXT NOT NULL,
		description      TEXT NOT NULL,
		reference_id     INTEGER,
		reference_type   TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_coin_transactions_user_created
		ON coin_transactions (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id            SERIAL PRIMARY KEY,
		title         TEXT NOT NULL,
		content       TEXT NOT NULL DEFAULT '',
		location_name TEXT NOT NULL,
		address       TEXT NOT NULL,
		location_key  TEXT NOT NULL,
		owner_id      INTEGER NOT NULL REFERENCES users(id),
		is_published  BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_location_key ON reviews (location_key)`,
	`CREATE TABLE IF NOT EXISTS location_reservations (
		id                  SERIAL PRIMARY KEY,
		location_name       TEXT NOT NULL,
		address             TEXT NOT NULL,
		location_key        TEXT NOT NULL,
		user_id             INTEGER NOT NULL REFERENCES users(id),
		status              TEXT NOT NULL DEFAULT 'ACTIVE',
		deposit_amount      INTEGER NOT NULL DEFAULT 50,
		reserved_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at          TIMESTAMPTZ NOT NULL,
		completed_at        TIMESTAMPTZ,
		review_id           INTEGER,
		coin_transaction_id INTEGER
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_reservation_per_user
		ON location_reservations (user_id) WHERE status = 'ACTIVE'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_reservation_per_location
		ON location_reservations (location_key) WHERE status = 'ACTIVE'`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_user_reserved
		ON location_reservations (user_id, reserved_at DESC)`,
}

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
