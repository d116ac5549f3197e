package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema crea la tabla store_stock si no existe. El par (store_id, sku)
// es único para que la siembra pueda omitir filas ya existentes con ON CONFLICT.
func EnsureSchema(ctx context.Context, q Querier) error {
	query := `
		CREATE TABLE IF NOT EXISTS store_stock (
			id         SERIAL PRIMARY KEY,
			store_id   VARCHAR(20) NOT NULL,
			sku        VARCHAR(50) NOT NULL,
			available  INTEGER NOT NULL DEFAULT 0,
			reserved   INTEGER NOT NULL DEFAULT 0,
			UNIQUE (store_id, sku)
		)`
	if _, err := q.Exec(ctx, query); err != nil {
		return fmt.Errorf("crear tabla store_stock: %w", err)
	}
	return nil
}
