package inventory

import (
	"context"

	"github.com/jhoicas/retail-services/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un repositorio de stock
// atado a la tx. Commit si fn devuelve nil; Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}
