package dto

import "fmt"

// ReduceItemDTO ítem del body de POST /inventory-service/reduce.
// Quantity es puntero para distinguir campo ausente en la validación.
type ReduceItemDTO struct {
	ID       string `json:"id"`
	Quantity *int64 `json:"quantity"`
}

// ValidateReduceItems verifica el esquema del batch de reducción.
func ValidateReduceItems(items []ReduceItemDTO) []FieldError {
	var details []FieldError
	for i, item := range items {
		prefix := fmt.Sprintf("%d.", i)
		if item.ID == "" {
			details = append(details, FieldError{Field: prefix + "id", Error: "requerido"})
		}
		if item.Quantity == nil {
			details = append(details, FieldError{Field: prefix + "quantity", Error: "requerido (entero)"})
		}
	}
	return details
}

// UpdatedItemDTO resultado por ítem de la reducción.
type UpdatedItemDTO struct {
	ProductID     string `json:"product_id"`
	NewStockLevel int64  `json:"new_stock_level"`
}

// ReduceResponse respuesta de POST /inventory-service/reduce.
type ReduceResponse struct {
	Status       string           `json:"status"`
	UpdatedItems []UpdatedItemDTO `json:"updated_items"`
}

// StockLevelResponse respuesta de GET /inventory-service/:product_id.
type StockLevelResponse struct {
	ProductID  string `json:"product_id"`
	StockLevel int64  `json:"stock_level"`
}
