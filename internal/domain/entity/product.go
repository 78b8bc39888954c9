package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (lectura directa, sin invariantes).
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Description string
	ImageURL    string
}
