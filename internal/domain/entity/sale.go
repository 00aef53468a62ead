package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Única transición soportada: completed -> refunded (cancelación).
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
	SaleStatusRefunded  = "refunded"
)

// Métodos de pago.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
	PaymentOther    = "other"
)

// Sale representa la cabecera de una venta.
// Invariante: FinalAmount = max(0, TotalAmount - Discount), recalculado por el
// caso de uso cada vez que cambia alguno de los dos.
type Sale struct {
	ID            string
	Code          string  // único, generado (prefijo SA)
	CustomerID    *string // nil para ventas de mostrador
	SaleDate      time.Time
	TotalAmount   decimal.Decimal
	Discount      decimal.Decimal
	FinalAmount   decimal.Decimal
	PaymentMethod string
	Status        string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// IsCancelled indica si la venta ya fue cancelada o reembolsada.
func (s *Sale) IsCancelled() bool {
	return s.Status == SaleStatusCancelled || s.Status == SaleStatusRefunded
}

// ValidPaymentMethod valida el método de pago recibido.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentOther:
		return true
	}
	return false
}
