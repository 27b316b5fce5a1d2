package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'customer' CHECK (role IN ('customer', 'admin')),
		is_active BOOLEAN NOT NULL DEFAULT true,
		reset_token TEXT,
		reset_token_expires_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// Older databases predate the password reset columns.
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS reset_token TEXT`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS reset_token_expires_at TIMESTAMPTZ`,
	`CREATE TABLE IF NOT EXISTS artists (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL UNIQUE,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		duration TEXT NOT NULL,
		price_cents BIGINT NOT NULL CHECK (price_cents >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		ref TEXT NOT NULL UNIQUE,
		user_id UUID NOT NULL REFERENCES users(id),
		artist_id UUID NOT NULL REFERENCES artists(id),
		artist_name TEXT NOT NULL,
		service_name TEXT NOT NULL,
		service_price_cents BIGINT NOT NULL CHECK (service_price_cents >= 0),
		category_name TEXT,
		date DATE NOT NULL,
		time_slot TEXT NOT NULL CHECK (time_slot IN (
			'09:00 AM - 10:00 AM', '10:00 AM - 11:00 AM', '11:00 AM - 12:00 PM',
			'01:00 PM - 02:00 PM', '02:00 PM - 03:00 PM',
			'03:00 PM - 04:00 PM', '04:00 PM - 05:00 PM')),
		status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Confirmed', 'Cancelled')),
		payment_method TEXT NOT NULL DEFAULT 'mpesa' CHECK (payment_method IN ('mpesa', 'cash', 'card')),
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// The authoritative slot guard: two concurrent requests for the same
	// artist/day/slot cannot both commit, regardless of what the pre-insert
	// conflict check saw.
	`CREATE UNIQUE INDEX IF NOT EXISTS bookings_active_slot_idx
		ON bookings (artist_id, date, time_slot)
		WHERE status <> 'Cancelled'`,
	`CREATE INDEX IF NOT EXISTS bookings_user_idx ON bookings (user_id)`,
	`CREATE INDEX IF NOT EXISTS bookings_date_idx ON bookings (date)`,
}

// InitializeSchema creates all tables and indexes if they do not exist.
// Statements are idempotent; the app runs this on every start.
func InitializeSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
