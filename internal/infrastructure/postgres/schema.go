package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DDL por servicio. Cada binario asegura su propio esquema en el arranque,
// igual que el seed; no hay motor de migraciones para tres tablas.

const ordersDDL = `
CREATE TABLE IF NOT EXISTS orders (
	id               TEXT PRIMARY KEY,
	status           TEXT NOT NULL DEFAULT 'received',
	total            NUMERIC(12,2) NOT NULL,
	shipping_name    TEXT NOT NULL,
	shipping_address TEXT NOT NULL,
	shipping_city    TEXT NOT NULL,
	shipping_zip     TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS order_items (
	id           TEXT PRIMARY KEY,
	order_id     TEXT NOT NULL REFERENCES orders(id),
	product_id   TEXT NOT NULL,
	product_name TEXT NOT NULL,
	quantity     BIGINT NOT NULL,
	price        NUMERIC(12,2) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);`

const inventoryDDL = `
CREATE TABLE IF NOT EXISTS inventory (
	product_id  TEXT PRIMARY KEY,
	stock_level BIGINT NOT NULL DEFAULT 0 CHECK (stock_level >= 0)
);`

const productsDDL = `
CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	price       NUMERIC(12,2) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL DEFAULT ''
);`

// EnsureOrdersSchema crea las tablas del servicio de órdenes si no existen.
func EnsureOrdersSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return ensure(ctx, pool, ordersDDL)
}

// EnsureInventorySchema crea la tabla del libro de stock si no existe.
func EnsureInventorySchema(ctx context.Context, pool *pgxpool.Pool) error {
	return ensure(ctx, pool, inventoryDDL)
}

// EnsureProductsSchema crea la tabla del catálogo si no existe.
func EnsureProductsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return ensure(ctx, pool, productsDDL)
}

func ensure(ctx context.Context, pool *pgxpool.Pool, ddl string) error {
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
