package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Setup crea las tablas y los índices únicos de deduplicación.
// Los índices sobre name cierran la carrera de findOrCreate: dos imports
// concurrentes del mismo cliente terminan en insert + ErrDuplicate + re-lectura
// en lugar de dos filas duplicadas.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id      BIGSERIAL PRIMARY KEY,
			name    TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS customers_name_key ON customers (name)`,
		`CREATE TABLE IF NOT EXISTS products (
			id    BIGSERIAL PRIMARY KEY,
			name  TEXT NOT NULL,
			price NUMERIC(12,2) NOT NULL DEFAULT 0
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS products_name_key ON products (name)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id           BIGSERIAL PRIMARY KEY,
			invoice_date DATE NOT NULL,
			customer_id  BIGINT NOT NULL REFERENCES customers (id),
			grand_total  NUMERIC(12,2) NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS invoice_items (
			id         BIGSERIAL PRIMARY KEY,
			invoice_id BIGINT NOT NULL REFERENCES invoices (id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL REFERENCES products (id),
			quantity   INTEGER NOT NULL DEFAULT 0,
			unit_price NUMERIC(12,2) NOT NULL DEFAULT 0,
			total      NUMERIC(12,2) NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("setup schema: %w", err)
		}
	}
	return nil
}
