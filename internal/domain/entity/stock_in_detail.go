package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockInDetail representa una línea de una recepción de mercancía.
// Subtotal = Quantity × CostPrice, calculado por el caso de uso antes de persistir.
type StockInDetail struct {
	ID         string
	StockInID  string
	ItemID     string
	Quantity   int             // >= 1
	CostPrice  decimal.Decimal // > 0
	ExpiryDate *time.Time
	Subtotal   decimal.Decimal
	CreatedAt  time.Time
}

// IsExpired indica si la línea ya pasó su fecha de vencimiento.
func (d *StockInDetail) IsExpired(now time.Time) bool {
	return d.ExpiryDate != nil && d.ExpiryDate.Before(now)
}
