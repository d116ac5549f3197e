package repository

import (
	"context"

	"github.com/jhoicas/retail-services/internal/domain/entity"
)

// StockFilter filtros opcionales para listar stock. Campos vacíos no filtran.
type StockFilter struct {
	StoreID string
	SKU     string
}

// StockRepository define el puerto de persistencia para store_stock.
// GetForUpdate y Save se usan dentro de transacciones para garantizar
// consistencia en reservar/confirmar.
type StockRepository interface {
	// List devuelve las filas que cumplen el filtro (sin orden garantizado).
	List(ctx context.Context, f StockFilter) ([]entity.Stock, error)
	// GetForUpdate obtiene la fila (store, sku) bloqueándola (SELECT FOR UPDATE).
	// Devuelve nil, nil si no existe.
	GetForUpdate(ctx context.Context, storeID, sku string) (*entity.Stock, error)
	// Save persiste los contadores de una fila existente.
	Save(ctx context.Context, s *entity.Stock) error
	// CreateIfAbsent inserta la fila si (store, sku) no existe todavía.
	CreateIfAbsent(ctx context.Context, s *entity.Stock) error
}
