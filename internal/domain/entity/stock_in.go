package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una recepción de mercancía.
const (
	StockInStatusDraft     = "draft"
	StockInStatusCompleted = "completed"
	StockInStatusCancelled = "cancelled"
)

// StockIn representa la cabecera de una recepción de mercancía (entrada de stock).
// Se crea atómicamente con sus líneas; cada línea muta exactamente una fila de Inventory.
type StockIn struct {
	ID          string
	Code        string // único, generado (prefijo SI)
	ImportDate  time.Time
	TotalAmount decimal.Decimal // Σ(línea.quantity × línea.costPrice)
	Status      string
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
