package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. En este flujo la orden nace "received" y no transiciona.
const (
	OrderStatusReceived = "received"
)

// Order representa la cabecera de una orden de compra.
// Se crea una sola vez, en la misma transacción que sus líneas; inmutable después.
type Order struct {
	ID              string // "ORD-" + UUID, generado por el coordinador
	Status          string
	Total           decimal.Decimal
	ShippingName    string
	ShippingAddress string
	ShippingCity    string
	ShippingZip     string
	CreatedAt       time.Time
}

// OrderItem representa una línea de una orden.
// Price es el precio al momento de la compra (snapshot denormalizado,
// nunca se vuelve a leer del catálogo).
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int64
	Price       decimal.Decimal
}
