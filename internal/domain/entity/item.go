package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo de la tienda.
// Cada Item tiene exactamente una fila de Inventory asociada (se crea junto con él).
type Item struct {
	ID           string
	Code         string // único, generado (prefijo IT)
	Name         string // único
	ItemTypeID   string
	Description  string
	SellingPrice decimal.Decimal // precio de venta, >= 0
	Unit         string          // "pcs", "kg", "bolsa"...
	ImagePath    string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
