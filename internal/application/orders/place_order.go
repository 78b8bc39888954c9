package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/retail-api/internal/application/dto"
	"github.com/jhoicas/retail-api/internal/domain/entity"
	"github.com/jhoicas/retail-api/internal/domain/repository"
	"github.com/jhoicas/retail-api/pkg/logger"
)

// PlaceOrderUseCase coordina el alta de una orden: escritura transaccional de
// cabecera + líneas y, solo después del commit, la llamada al servicio de
// inventario para descontar stock.
//
// Las dos escrituras NO son atómicas entre servicios: no hay transacción
// distribuida. Si la llamada de inventario falla, la orden ya confirmada se
// mantiene y el fallo solo se registra en el log (brecha de consistencia
// eventual conocida; no agregar reintentos sin exponerlo como política).
type PlaceOrderUseCase struct {
	txRunner TxRunner
	reducer  StockReducer
	log      *logger.Logger
}

// NewPlaceOrderUseCase construye el caso de uso.
func NewPlaceOrderUseCase(txRunner TxRunner, reducer StockReducer, log *logger.Logger) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{txRunner: txRunner, reducer: reducer, log: log}
}

// Place valida ya hecha en el handler; aquí se asume el request bien formado.
// Devuelve error solo si la escritura local de la orden falla; en ese caso no
// se llama a inventario. El resultado nunca refleja el éxito o fracaso de la
// reducción de stock.
func (uc *PlaceOrderUseCase) Place(ctx context.Context, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	orderID := "ORD-" + uuid.New().String()
	now := time.Now()

	order := &entity.Order{
		ID:              orderID,
		Status:          entity.OrderStatusReceived,
		Total:           *in.Total,
		ShippingName:    in.ShippingDetails.Name,
		ShippingAddress: in.ShippingDetails.Address,
		ShippingCity:    in.ShippingDetails.City,
		ShippingZip:     in.ShippingDetails.Zip,
		CreatedAt:       now,
	}

	// 1. Cabecera + líneas en una sola transacción local.
	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range in.Cart {
			line := &entity.OrderItem{
				ID:          uuid.New().String(),
				OrderID:     orderID,
				ProductID:   item.ID,
				ProductName: item.Name,
				Quantity:    *item.Quantity,
				Price:       *item.Price,
			}
			if err := orderRepo.CreateItem(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", orderID).
		Int("items", len(in.Cart)).
		Str("total", in.Total.String()).
		Msg("orden guardada")

	// 2. Llamada a inventario, mejor esfuerzo. El inventario solo necesita
	// id y cantidad; precio y nombre no viajan.
	reduction := make([]entity.ReductionItem, 0, len(in.Cart))
	for _, item := range in.Cart {
		reduction = append(reduction, entity.ReductionItem{
			ProductID: item.ID,
			Quantity:  *item.Quantity,
		})
	}

	outcomes, err := uc.reducer.Reduce(ctx, reduction)
	if err != nil {
		// Peer caído o con error: se registra y se continúa. Sin cola de
		// reintentos ni dead-letter; la orden queda huérfana de su descuento.
		uc.log.Warn().
			Err(err).
			Str("order_id", orderID).
			Msg("no se pudo descontar inventario, la orden se confirma igual")
	} else {
		for _, out := range outcomes {
			uc.log.Info().
				Str("order_id", orderID).
				Str("product_id", out.ProductID).
				Int64("new_stock_level", out.NewStockLevel).
				Msg("inventario descontado")
		}
	}

	// 3. Confirmación al cliente, independiente del resultado de inventario.
	return &dto.OrderResponse{
		OrderID: orderID,
		Status:  entity.OrderStatusReceived,
		Total:   order.Total,
	}, nil
}

// ListOrders devuelve las cabeceras guardadas (apoyo de depuración).
func (uc *PlaceOrderUseCase) ListOrders(ctx context.Context) ([]dto.OrderSummaryDTO, error) {
	var summaries []dto.OrderSummaryDTO
	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository) error {
		orders, err := orderRepo.List()
		if err != nil {
			return err
		}
		summaries = make([]dto.OrderSummaryDTO, 0, len(orders))
		for _, o := range orders {
			summaries = append(summaries, dto.OrderSummaryDTO{
				ID:              o.ID,
				Status:          o.Status,
				Total:           o.Total,
				ShippingName:    o.ShippingName,
				ShippingAddress: o.ShippingAddress,
				ShippingCity:    o.ShippingCity,
				ShippingZip:     o.ShippingZip,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
