package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-services/internal/domain/entity"
	"github.com/jhoicas/retail-services/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// List devuelve las filas de store_stock que cumplen el filtro; campos vacíos
// no filtran. Sin orden garantizado.
func (r *StockRepo) List(ctx context.Context, f repository.StockFilter) ([]entity.Stock, error) {
	query := `SELECT id, store_id, sku, available, reserved FROM store_stock WHERE 1=1`
	args := []any{}
	if f.StoreID != "" {
		args = append(args, f.StoreID)
		query += fmt.Sprintf(" AND store_id = $%d", len(args))
	}
	if f.SKU != "" {
		args = append(args, f.SKU)
		query += fmt.Sprintf(" AND sku = $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	out := make([]entity.Stock, 0)
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.StoreID, &s.SKU, &s.Available, &s.Reserved); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetForUpdate obtiene la fila (store, sku) y la bloquea (SELECT FOR UPDATE).
// Devuelve nil, nil si no existe.
func (r *StockRepo) GetForUpdate(ctx context.Context, storeID, sku string) (*entity.Stock, error) {
	query := `
		SELECT id, store_id, sku, available, reserved
		FROM store_stock WHERE store_id = $1 AND sku = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, storeID, sku).Scan(
		&s.ID, &s.StoreID, &s.SKU, &s.Available, &s.Reserved,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Save persiste los contadores de una fila existente (por id).
func (r *StockRepo) Save(ctx context.Context, s *entity.Stock) error {
	query := `UPDATE store_stock SET available = $1, reserved = $2 WHERE id = $3`
	if _, err := r.q.Exec(ctx, query, s.Available, s.Reserved, s.ID); err != nil {
		return fmt.Errorf("save stock: %w", err)
	}
	return nil
}

// CreateIfAbsent inserta la fila si el par (store_id, sku) no existe todavía.
func (r *StockRepo) CreateIfAbsent(ctx context.Context, s *entity.Stock) error {
	query := `
		INSERT INTO store_stock (store_id, sku, available, reserved)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (store_id, sku) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, s.StoreID, s.SKU, s.Available, s.Reserved); err != nil {
		return fmt.Errorf("create stock: %w", err)
	}
	return nil
}
