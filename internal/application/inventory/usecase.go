package inventory

import (
	"context"

	"github.com/jhoicas/retail-services/internal/domain"
	"github.com/jhoicas/retail-services/internal/domain/entity"
	"github.com/jhoicas/retail-services/internal/domain/repository"
)

// Filas de demostración que inserta Seed. Las que ya existen se omiten.
var seedRows = []entity.Stock{
	{StoreID: "S001", SKU: "SKU-001", Available: 10, Reserved: 0},
	{StoreID: "S001", SKU: "SKU-002", Available: 5, Reserved: 0},
}

// StockUseCase aplica las reglas de inventario: consulta, siembra y el ciclo
// reservar/confirmar. Reservar y confirmar corren cada uno en una transacción
// con bloqueo de fila (SELECT FOR UPDATE) para que dos reservas concurrentes
// sobre la misma fila no puedan pasar ambas la verificación de disponibilidad.
type StockUseCase struct {
	repo     repository.StockRepository
	txRunner TxRunner
}

// NewStockUseCase construye el caso de uso con el repo (atado al pool) y el
// runner transaccional.
func NewStockUseCase(repo repository.StockRepository, txRunner TxRunner) *StockUseCase {
	return &StockUseCase{repo: repo, txRunner: txRunner}
}

// Seed inserta las filas de demostración, omitiendo las que colisionen en
// (store_id, sku). Idempotente: llamarlo dos veces deja exactamente las mismas filas.
func (uc *StockUseCase) Seed(ctx context.Context) error {
	for i := range seedRows {
		row := seedRows[i]
		if err := uc.repo.CreateIfAbsent(ctx, &row); err != nil {
			return err
		}
	}
	return nil
}

// Query devuelve las filas de stock, opcionalmente filtradas por tienda y/o SKU.
// Sin filtros devuelve la tabla completa.
func (uc *StockUseCase) Query(ctx context.Context, storeID, sku string) ([]entity.Stock, error) {
	return uc.repo.List(ctx, repository.StockFilter{StoreID: storeID, SKU: sku})
}

// Reserve mueve qty unidades de available a reserved para (store, sku).
// Devuelve domain.ErrNoStock si la fila no existe o available < qty, y
// domain.ErrInvalidInput si qty no es positivo. available+reserved de la fila
// no cambia en una reserva exitosa.
func (uc *StockUseCase) Reserve(ctx context.Context, storeID, sku string, qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		row, err := stockRepo.GetForUpdate(ctx, storeID, sku)
		if err != nil {
			return err
		}
		if row == nil || row.Available < qty {
			return domain.ErrNoStock
		}
		row.Available -= qty
		row.Reserved += qty
		return stockRepo.Save(ctx, row)
	})
}

// Confirm descuenta qty unidades de reserved para (store, sku); es terminal:
// las unidades no vuelven a available. Devuelve domain.ErrNoReserved si la
// fila no existe o reserved < qty, y domain.ErrInvalidInput si qty no es positivo.
func (uc *StockUseCase) Confirm(ctx context.Context, storeID, sku string, qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		row, err := stockRepo.GetForUpdate(ctx, storeID, sku)
		if err != nil {
			return err
		}
		if row == nil || row.Reserved < qty {
			return domain.ErrNoReserved
		}
		row.Reserved -= qty
		return stockRepo.Save(ctx, row)
	})
}
