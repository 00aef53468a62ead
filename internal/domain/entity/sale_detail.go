package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDetail representa una línea de una venta.
// CostPrice es el snapshot del costo promedio del artículo al momento de la
// venta, para calcular utilidad en reportes sin depender del costo futuro.
type SaleDetail struct {
	ID        string
	SaleID    string
	ItemID    string
	Quantity  int             // >= 1
	UnitPrice decimal.Decimal // > 0
	CostPrice decimal.Decimal
	Subtotal  decimal.Decimal // Quantity × UnitPrice
	CreatedAt time.Time
}

// Profit devuelve la utilidad de la línea: (UnitPrice - CostPrice) × Quantity.
func (d *SaleDetail) Profit() decimal.Decimal {
	return d.UnitPrice.Sub(d.CostPrice).Mul(decimal.NewFromInt(int64(d.Quantity)))
}
