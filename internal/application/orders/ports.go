package orders

import (
	"context"

	"github.com/jhoicas/retail-api/internal/domain/entity"
	"github.com/jhoicas/retail-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de órdenes atado a esa tx. Garantiza que cabecera y líneas
// se escriban de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// StockReducer es el puerto hacia el servicio de inventario (llamada de red).
// La implementación debe acotar la llamada con un timeout; cualquier fallo
// (peer inalcanzable, timeout o estado de error) se devuelve como error y el
// coordinador decide la política.
type StockReducer interface {
	Reduce(ctx context.Context, items []entity.ReductionItem) ([]entity.ReductionOutcome, error)
}
