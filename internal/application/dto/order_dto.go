package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartItemDTO ítem del carrito en POST /orders-service/orders.
// Punteros para distinguir campo ausente de valor cero en la validación.
type CartItemDTO struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int64           `json:"quantity"`
	ImageURL string           `json:"imageUrl"`
}

// ShippingDetailsDTO datos de envío de la orden.
type ShippingDetailsDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// PlaceOrderRequest body para POST /orders-service/orders.
type PlaceOrderRequest struct {
	Cart            []CartItemDTO       `json:"cart"`
	ShippingDetails *ShippingDetailsDTO `json:"shippingDetails"`
	Total           *decimal.Decimal    `json:"total"`
}

// Validate verifica el esquema del request y devuelve el detalle por campo.
// Todos los campos son obligatorios; quantity debe ser un entero positivo.
func (r PlaceOrderRequest) Validate() []FieldError {
	var details []FieldError

	if len(r.Cart) == 0 {
		details = append(details, FieldError{Field: "cart", Error: "requerido y no vacío"})
	}
	for i, item := range r.Cart {
		prefix := fmt.Sprintf("cart.%d.", i)
		if item.ID == "" {
			details = append(details, FieldError{Field: prefix + "id", Error: "requerido"})
		}
		if item.Name == "" {
			details = append(details, FieldError{Field: prefix + "name", Error: "requerido"})
		}
		if item.Price == nil {
			details = append(details, FieldError{Field: prefix + "price", Error: "requerido (numérico)"})
		}
		if item.Quantity == nil {
			details = append(details, FieldError{Field: prefix + "quantity", Error: "requerido (entero)"})
		} else if *item.Quantity <= 0 {
			details = append(details, FieldError{Field: prefix + "quantity", Error: "debe ser mayor que cero"})
		}
		if item.ImageURL == "" {
			details = append(details, FieldError{Field: prefix + "imageUrl", Error: "requerido"})
		}
	}

	if r.ShippingDetails == nil {
		details = append(details, FieldError{Field: "shippingDetails", Error: "requerido"})
	} else {
		s := r.ShippingDetails
		for _, f := range []struct{ name, value string }{
			{"shippingDetails.name", s.Name},
			{"shippingDetails.address", s.Address},
			{"shippingDetails.city", s.City},
			{"shippingDetails.zip", s.Zip},
		} {
			if f.value == "" {
				details = append(details, FieldError{Field: f.name, Error: "requerido"})
			}
		}
	}

	if r.Total == nil {
		details = append(details, FieldError{Field: "total", Error: "requerido (numérico)"})
	}

	return details
}

// OrderResponse respuesta de POST /orders-service/orders.
// No refleja el resultado de la reducción de inventario: la orden se confirma
// en cuanto su escritura local queda durable.
type OrderResponse struct {
	OrderID string          `json:"orderId"`
	Status  string          `json:"status"`
	Total   decimal.Decimal `json:"total"`
}

// OrderSummaryDTO cabecera de orden para GET /orders-service/orders (depuración).
type OrderSummaryDTO struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	ShippingName    string          `json:"shipping_name"`
	ShippingAddress string          `json:"shipping_address"`
	ShippingCity    string          `json:"shipping_city"`
	ShippingZip     string          `json:"shipping_zip"`
}
