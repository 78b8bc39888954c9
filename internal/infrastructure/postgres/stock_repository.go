package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-api/internal/domain/entity"
	"github.com/jhoicas/retail-api/internal/domain/repository"
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

// Get obtiene la entrada de stock de un producto; nil, nil si no existe.
func (r *StockRepo) Get(productID string) (*entity.StockEntry, error) {
	query := `SELECT product_id, stock_level FROM inventory WHERE product_id = $1`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID).Scan(&e.ProductID, &e.StockLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &e, nil
}

// GetForUpdate obtiene la entrada y bloquea la fila (SELECT FOR UPDATE) para que
// dos batches concurrentes no lean el mismo nivel; nil, nil si no existe.
func (r *StockRepo) GetForUpdate(productID string) (*entity.StockEntry, error) {
	query := `SELECT product_id, stock_level FROM inventory WHERE product_id = $1 FOR UPDATE`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID).Scan(&e.ProductID, &e.StockLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &e, nil
}

// UpdateLevel fija el nivel de stock de un producto.
func (r *StockRepo) UpdateLevel(productID string, level int64) error {
	query := `UPDATE inventory SET stock_level = $2 WHERE product_id = $1`
	_, err := r.q.Exec(context.Background(), query, productID, level)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Insert crea una entrada de stock (solo seed; en operación normal no se crean ni borran).
func (r *StockRepo) Insert(entry *entity.StockEntry) error {
	query := `INSERT INTO inventory (product_id, stock_level) VALUES ($1, $2)`
	_, err := r.q.Exec(context.Background(), query, entry.ProductID, entry.StockLevel)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("stock entry already exists: %w", err)
		}
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// Count devuelve el número de entradas del libro (el seed lo usa para no duplicar).
func (r *StockRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM inventory`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock: %w", err)
	}
	return n, nil
}
