package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-api/internal/application/dto"
	"github.com/jhoicas/retail-api/internal/application/inventory"
	"github.com/jhoicas/retail-api/internal/domain"
	"github.com/jhoicas/retail-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del servicio de inventario.
type InventoryHandler struct {
	uc *inventory.ReduceStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.ReduceStockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Reduce aplica un batch de deducciones de stock en una sola transacción.
// El body es un array de {id, quantity}. 500 si la transacción falla (nada
// queda aplicado); los productos desconocidos simplemente no aparecen en
// updated_items.
func (h *InventoryHandler) Reduce(c *fiber.Ctx) error {
	var items []dto.ReduceItemDTO
	details, err := decodeBody(c.Body(), &items)
	if err != nil {
		if details != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Code: "VALIDATION", Message: "cuerpo inválido", Details: details,
			})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "JSON malformado",
		})
	}
	if details := dto.ValidateReduceItems(items); len(details) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code: "VALIDATION", Message: "datos inválidos", Details: details,
		})
	}

	reduction := make([]entity.ReductionItem, 0, len(items))
	for _, item := range items {
		reduction = append(reduction, entity.ReductionItem{
			ProductID: item.ID,
			Quantity:  *item.Quantity,
		})
	}

	outcomes, err := h.uc.Reduce(c.Context(), reduction)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "fallo al actualizar inventario",
		})
	}

	updated := make([]dto.UpdatedItemDTO, 0, len(outcomes))
	for _, out := range outcomes {
		updated = append(updated, dto.UpdatedItemDTO{
			ProductID:     out.ProductID,
			NewStockLevel: out.NewStockLevel,
		})
	}
	return c.JSON(dto.ReduceResponse{Status: "Inventory updated", UpdatedItems: updated})
}

// GetLevel devuelve el nivel de stock de un producto, o 404 si no existe.
func (h *InventoryHandler) GetLevel(c *fiber.Ctx) error {
	productID := c.Params("product_id")

	entry, err := h.uc.GetLevel(c.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "producto sin inventario: " + productID,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(dto.StockLevelResponse{
		ProductID:  entry.ProductID,
		StockLevel: entry.StockLevel,
	})
}
