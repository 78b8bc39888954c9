package entity

// StockEntry representa la existencia actual de un producto en el libro de stock.
// Invariante: StockLevel nunca es negativo; el reconciliador aplica clamp a 0
// en lugar de rechazar la venta.
type StockEntry struct {
	ProductID  string
	StockLevel int64
}

// ReductionItem es una deducción solicitada sobre el stock (transitoria, no se persiste).
type ReductionItem struct {
	ProductID string
	Quantity  int64
}

// ReductionOutcome es el resultado por ítem de una reducción aplicada.
// La ausencia de un ProductID solicitado significa "no encontrado, omitido".
type ReductionOutcome struct {
	ProductID     string
	NewStockLevel int64
}
