package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/application/inventory"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// Cancel anula una venta completada: restaura al inventario la cantidad de
// cada línea y marca la venta como reembolsada. El costo promedio no se toca,
// la devolución solo repone unidades. Todo ocurre en una transacción con la
// cabecera bloqueada, de modo que dos cancelaciones concurrentes de la misma
// venta no pueden reponer el stock dos veces.
func (uc *UseCase) Cancel(ctx context.Context, id string, reason string) (*dto.CancelSaleResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id de venta vacío", domain.ErrInvalidInput)
	}
	now := time.Now()

	var result *dto.CancelSaleResponse
	err := uc.txRunner.Run(ctx, func(r repository.Tx) error {
		sale, err := r.Sales.GetForUpdate(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
		}
		if sale.IsCancelled() {
			return fmt.Errorf("venta %s: %w", sale.Code, domain.ErrAlreadyCancelled)
		}

		details, err := r.Sales.ListDetails(sale.ID)
		if err != nil {
			return err
		}
		for _, d := range details {
			if _, err := inventory.ApplyDelta(r.Inventory, d.Detail.ItemID, d.Detail.Quantity, now); err != nil {
				return err
			}
		}

		notes := refundNotes(sale.Notes, reason)
		if err := r.Sales.UpdateStatusAndNotes(sale.ID, entity.SaleStatusRefunded, notes); err != nil {
			return err
		}
		result = &dto.CancelSaleResponse{
			ID:     sale.ID,
			Code:   sale.Code,
			Status: entity.SaleStatusRefunded,
			Notes:  notes,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// refundNotes anexa la marca de reembolso conservando las notas originales.
func refundNotes(original, reason string) string {
	mark := "[REFUNDED]"
	if reason != "" {
		mark = fmt.Sprintf("[REFUNDED] %s", reason)
	}
	if strings.TrimSpace(original) == "" {
		return mark
	}
	return original + "\n" + mark
}
