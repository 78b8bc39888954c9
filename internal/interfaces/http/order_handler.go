package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-api/internal/application/dto"
	"github.com/jhoicas/retail-api/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP del servicio de órdenes.
type OrderHandler struct {
	uc *orders.PlaceOrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.PlaceOrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Place recibe una orden, la persiste y dispara el descuento de inventario.
// 422 si el esquema del body no valida (con detalle por campo); 500 si la
// escritura local falla. La respuesta 200 nunca refleja el resultado del
// descuento de inventario.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	details, err := decodeBody(c.Body(), &in)
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
	if details := in.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code: "VALIDATION", Message: "datos inválidos", Details: details,
		})
	}

	out, err := h.uc.Place(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "fallo al procesar la orden (error de base de datos)",
		})
	}
	return c.JSON(out)
}

// List devuelve todas las cabeceras de órdenes guardadas (depuración).
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(out)
}
