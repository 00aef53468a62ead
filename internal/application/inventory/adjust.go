package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// Adjust sobrescribe la cantidad de un artículo con un motivo (conteo físico,
// merma, rotura). El costo promedio se deja intacto: el ajuste cambia la
// cantidad pero no aporta información de costo. Pendiente de definición de
// producto si un ajuste debería también corregir el costo base.
//
// Corre en transacción con lock de fila para que OldQuantity y Difference no
// se calculen sobre una lectura interferida por una venta concurrente.
func (uc *QueryUseCase) Adjust(ctx context.Context, in dto.AdjustInventoryRequest) (*dto.AdjustInventoryResponse, error) {
	if in.ItemID == "" {
		return nil, fmt.Errorf("%w: artículo requerido", domain.ErrInvalidInput)
	}
	if in.NewQuantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	if in.Reason == "" {
		return nil, fmt.Errorf("%w: el motivo del ajuste es obligatorio", domain.ErrInvalidInput)
	}

	var resp *dto.AdjustInventoryResponse
	err := uc.txRunner.Run(ctx, func(r repository.Tx) error {
		inv, err := r.Inventory.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		item, err := r.Items.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		oldQty := inv.Quantity
		inv.Quantity = in.NewQuantity
		inv.LastUpdated = time.Now()
		if err := r.Inventory.Update(inv); err != nil {
			return err
		}

		resp = &dto.AdjustInventoryResponse{
			ItemName:    item.Name,
			OldQuantity: oldQty,
			NewQuantity: in.NewQuantity,
			Difference:  in.NewQuantity - oldQty,
			Reason:      in.Reason,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
