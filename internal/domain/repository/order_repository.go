package repository

import "github.com/jhoicas/retail-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia de órdenes.
// Create y CreateItem se usan dentro de una transacción (vía TxRunner) para
// garantizar que cabecera y líneas queden visibles de forma atómica.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	// List devuelve todas las cabeceras (sin filtros ni paginación; apoyo de depuración).
	List() ([]entity.Order, error)
}
