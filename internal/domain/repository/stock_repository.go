package repository

import "github.com/jhoicas/retail-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar el libro de stock.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Get devuelve nil, nil cuando el producto no existe en el libro.
	Get(productID string) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); nil, nil si no existe.
	GetForUpdate(productID string) (*entity.StockEntry, error)
	UpdateLevel(productID string, level int64) error
	Insert(entry *entity.StockEntry) error
	Count() (int64, error)
}
