package dto

import "github.com/shopspring/decimal"

// ProductResponse producto del catálogo en respuestas HTTP.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
}
