package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the products table and its indexes. It is idempotent.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		price          NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		original_price NUMERIC(10,2) CHECK (original_price IS NULL OR original_price >= 0),
		image          TEXT NOT NULL DEFAULT '',
		images         TEXT[] NOT NULL DEFAULT '{}',
		category       TEXT NOT NULL,
		rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
		reviews        INTEGER NOT NULL DEFAULT 0 CHECK (reviews >= 0),
		features       TEXT[] NOT NULL DEFAULT '{}',
		sizes          TEXT[],
		colors         TEXT[],
		in_stock       BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
	CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
`

// EnsureSchema applies Schema to the database.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
