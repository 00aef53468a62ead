package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory representa el estado de stock de un artículo (una fila por Item).
// Quantity nunca baja de cero; AvgCost es el costo promedio ponderado y es nil
// hasta la primera recepción de mercancía.
type Inventory struct {
	ID          string
	ItemID      string // único
	Quantity    int
	MinStock    int
	AvgCost     *decimal.Decimal
	Location    string
	LastUpdated time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsLowStock indica si el stock está en o por debajo del mínimo configurado.
func (i *Inventory) IsLowStock() bool {
	return i.Quantity <= i.MinStock
}

// AvgCostOrZero devuelve el costo promedio, o cero si aún no hay recepciones.
func (i *Inventory) AvgCostOrZero() decimal.Decimal {
	if i.AvgCost == nil {
		return decimal.Zero
	}
	return *i.AvgCost
}
