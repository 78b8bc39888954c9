package inventory

import (
	"context"

	"github.com/jhoicas/retail-api/internal/domain"
	"github.com/jhoicas/retail-api/internal/domain/entity"
	"github.com/jhoicas/retail-api/internal/domain/repository"
	"github.com/jhoicas/retail-api/pkg/logger"
)

// ReduceStockUseCase aplica un batch de deducciones sobre el libro de stock
// dentro de una sola transacción, con bloqueo de fila (SELECT FOR UPDATE)
// y Commit/Rollback.
//
// Políticas del negocio (intencionales, no bugs):
//   - Producto inexistente: se omite en silencio, no aparece en el resultado.
//   - Stock insuficiente (sobreventa): clamp a 0 en lugar de rechazar; no hay
//     compensación/reembolso aquí.
type ReduceStockUseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockRepository // lecturas fuera de transacción
	log       *logger.Logger
}

// NewReduceStockUseCase construye el caso de uso.
func NewReduceStockUseCase(txRunner TxRunner, stockRepo repository.StockRepository, log *logger.Logger) *ReduceStockUseCase {
	return &ReduceStockUseCase{txRunner: txRunner, stockRepo: stockRepo, log: log}
}

// Reduce procesa los ítems en orden de entrada dentro de una única transacción.
// Si cualquier paso falla, la transacción completa se revierte (ninguna
// deducción parcial sobrevive) y se devuelve el error al caller.
// No es idempotente: dos llamadas con el mismo batch descuentan dos veces.
func (uc *ReduceStockUseCase) Reduce(ctx context.Context, items []entity.ReductionItem) ([]entity.ReductionOutcome, error) {
	outcomes := make([]entity.ReductionOutcome, 0, len(items))

	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		for _, item := range items {
			// Bloquea la fila para evitar que dos batches concurrentes lean
			// el mismo nivel y ambos descuenten desde él.
			entry, err := stockRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if entry == nil {
				uc.log.Warn().
					Str("product_id", item.ProductID).
					Msg("producto sin entrada de stock, ítem omitido")
				continue
			}

			var newLevel int64
			if entry.StockLevel < item.Quantity {
				// Sobreventa: se vendió más de lo disponible. Clamp a 0;
				// la compensación queda fuera de este flujo.
				uc.log.Warn().
					Str("product_id", item.ProductID).
					Int64("stock", entry.StockLevel).
					Int64("solicitado", item.Quantity).
					Msg("sobreventa detectada, stock fijado en 0")
				newLevel = 0
			} else {
				newLevel = entry.StockLevel - item.Quantity
			}

			if err := stockRepo.UpdateLevel(item.ProductID, newLevel); err != nil {
				return err
			}
			uc.log.Info().
				Str("product_id", item.ProductID).
				Int64("antes", entry.StockLevel).
				Int64("despues", newLevel).
				Msg("stock reducido")

			outcomes = append(outcomes, entity.ReductionOutcome{
				ProductID:     item.ProductID,
				NewStockLevel: newLevel,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}

// GetLevel consulta el nivel de stock de un producto (lectura simple, sin tx).
func (uc *ReduceStockUseCase) GetLevel(ctx context.Context, productID string) (*entity.StockEntry, error) {
	entry, err := uc.stockRepo.Get(productID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}
