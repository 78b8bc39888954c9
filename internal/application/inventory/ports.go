package inventory

import (
	"context"

	"github.com/jhoicas/retail-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de stock atado a esa tx. Garantiza atomicidad para el batch
// completo de reducción: o se aplican todas las deducciones o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}
