package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
	domaininv "github.com/jcastro/petshop-api/internal/domain/inventory"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// ApplyReceipt aplica una entrada de mercancía a la fila de inventario de un
// artículo, dentro de la transacción del caller (invRepo debe estar atado a la tx).
// Bloquea la fila (SELECT FOR UPDATE), suma la cantidad y recalcula el costo
// promedio ponderado. Si el artículo aún no tiene fila de inventario (primera
// recepción), la crea con el costo de entrada como promedio inicial.
func ApplyReceipt(invRepo repository.InventoryRepository, itemID string, qty int, unitCost decimal.Decimal, now time.Time) (*entity.Inventory, error) {
	inv, err := invRepo.GetForUpdate(itemID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		cost := unitCost
		inv = &entity.Inventory{
			ItemID:      itemID,
			Quantity:    qty,
			MinStock:    0,
			AvgCost:     &cost,
			LastUpdated: now,
		}
		if err := invRepo.Create(inv); err != nil {
			return nil, err
		}
		return inv, nil
	}

	newCost := domaininv.AverageCost(inv.Quantity, inv.AvgCostOrZero(), qty, unitCost)
	inv.Quantity += qty
	inv.AvgCost = &newCost
	inv.LastUpdated = now
	if err := invRepo.Update(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ApplyDelta aplica un delta con signo a la cantidad de un artículo sin tocar
// el costo promedio (venta: delta negativo; restauración por cancelación:
// delta positivo), dentro de la transacción del caller. La fila se bloquea con
// SELECT FOR UPDATE, por lo que dos ventas concurrentes del mismo artículo se
// serializan y la segunda revalida contra la cantidad ya confirmada.
func ApplyDelta(invRepo repository.InventoryRepository, itemID string, delta int, now time.Time) (*entity.Inventory, error) {
	inv, err := invRepo.GetForUpdate(itemID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("inventario del artículo %s: %w", itemID, domain.ErrNotFound)
	}
	if inv.Quantity+delta < 0 {
		return nil, fmt.Errorf("%w: disponible %d, requerido %d", domain.ErrInsufficientStock, inv.Quantity, -delta)
	}
	inv.Quantity += delta
	inv.LastUpdated = now
	if err := invRepo.Update(inv); err != nil {
		return nil, err
	}
	return inv, nil
}
