package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockInLineRequest línea de una recepción de mercancía.
type StockInLineRequest struct {
	ItemID     string          `json:"item_id"`
	Quantity   int             `json:"quantity"`   // >= 1
	CostPrice  decimal.Decimal `json:"cost_price"` // > 0
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
}

// StockInRequest body para POST /api/inventory/stock-in.
type StockInRequest struct {
	ImportDate *time.Time           `json:"import_date,omitempty"` // default: ahora
	Details    []StockInLineRequest `json:"details"`               // >= 1 línea
	Notes      string               `json:"notes,omitempty"`
}

// StockInLineResponse línea de recepción en respuestas, con resumen del artículo.
type StockInLineResponse struct {
	ID         string          `json:"id"`
	ItemID     string          `json:"item_id"`
	ItemName   string          `json:"item_name"`
	Unit       string          `json:"unit"`
	Quantity   int             `json:"quantity"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
}

// StockInResponse recepción completa (cabecera + líneas).
type StockInResponse struct {
	ID          string                `json:"id"`
	Code        string                `json:"code"`
	ImportDate  time.Time             `json:"import_date"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	Status      string                `json:"status"`
	Notes       string                `json:"notes,omitempty"`
	Details     []StockInLineResponse `json:"details"`
}

// StockInListResponse página del historial de recepciones.
type StockInListResponse struct {
	StockIns []StockInResponse `json:"stock_ins"`
	Page     PageResponse      `json:"page"`
}

// AdjustInventoryRequest body para POST /api/inventory/adjust.
// Sobrescribe la cantidad directamente; no recalcula el costo promedio.
type AdjustInventoryRequest struct {
	ItemID      string `json:"item_id"`
	NewQuantity int    `json:"new_quantity"` // >= 0
	Reason      string `json:"reason"`
}

// AdjustInventoryResponse resultado del ajuste manual.
type AdjustInventoryResponse struct {
	ItemName    string `json:"item_name"`
	OldQuantity int    `json:"old_quantity"`
	NewQuantity int    `json:"new_quantity"`
	Difference  int    `json:"difference"`
	Reason      string `json:"reason"`
}

// UpdateMinStockRequest body para PUT /api/inventory/min-stock/:itemId.
type UpdateMinStockRequest struct {
	MinStock int `json:"min_stock"` // >= 0
}

// InventoryRowResponse fila de inventario con resumen del artículo.
type InventoryRowResponse struct {
	ItemID       string           `json:"item_id"`
	ItemCode     string           `json:"item_code"`
	ItemName     string           `json:"item_name"`
	ItemTypeName string           `json:"item_type_name,omitempty"`
	Unit         string           `json:"unit"`
	Quantity     int              `json:"quantity"`
	MinStock     int              `json:"min_stock"`
	AvgCost      *decimal.Decimal `json:"avg_cost,omitempty"`
	Location     string           `json:"location,omitempty"`
	IsLowStock   bool             `json:"is_low_stock"`
	LastUpdated  time.Time        `json:"last_updated"`
}

// InventoryListResponse página de inventario.
type InventoryListResponse struct {
	Inventory []InventoryRowResponse `json:"inventory"`
	Page      PageResponse           `json:"page"`
}
