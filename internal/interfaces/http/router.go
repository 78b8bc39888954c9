package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-api/internal/application/catalog"
	"github.com/jhoicas/retail-api/internal/application/inventory"
	"github.com/jhoicas/retail-api/internal/application/orders"
)

// Cada servicio registra solo su propio grupo de rutas; los tres binarios
// comparten este paquete de handlers.

// OrderRoutes registra las rutas del servicio de órdenes.
func OrderRoutes(app *fiber.App, uc *orders.PlaceOrderUseCase) {
	h := NewOrderHandler(uc)
	group := app.Group("/orders-service")
	group.Post("/orders", h.Place)
	group.Get("/orders", h.List)
}

// InventoryRoutes registra las rutas del servicio de inventario.
func InventoryRoutes(app *fiber.App, uc *inventory.ReduceStockUseCase) {
	h := NewInventoryHandler(uc)
	group := app.Group("/inventory-service")
	group.Post("/reduce", h.Reduce)
	group.Get("/:product_id", h.GetLevel)
}

// ProductRoutes registra las rutas del catálogo.
func ProductRoutes(app *fiber.App, uc *catalog.CatalogUseCase) {
	h := NewProductHandler(uc)
	group := app.Group("/products-service")
	group.Get("/products", h.List)
	group.Get("/products/:id", h.GetByID)
}
