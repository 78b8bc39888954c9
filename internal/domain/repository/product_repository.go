package repository

import "github.com/jhoicas/retail-api/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo (y alta para el seed).
type ProductRepository interface {
	List() ([]entity.Product, error)
	// GetByID devuelve nil, nil cuando el producto no existe.
	GetByID(id string) (*entity.Product, error)
	Create(product *entity.Product) error
	Count() (int64, error)
}
