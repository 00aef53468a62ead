package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea de una venta.
type SaleLineRequest struct {
	ItemID    string          `json:"item_id"`
	Quantity  int             `json:"quantity"`   // >= 1
	UnitPrice decimal.Decimal `json:"unit_price"` // > 0
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id,omitempty"` // vacío = venta de mostrador
	SaleDate      *time.Time        `json:"sale_date,omitempty"`   // default: ahora
	Details       []SaleLineRequest `json:"details"`               // >= 1 línea
	Discount      decimal.Decimal   `json:"discount"`              // >= 0, default 0
	PaymentMethod string            `json:"payment_method,omitempty"` // default "cash"
	Notes         string            `json:"notes,omitempty"`
}

// CancelSaleRequest body para PUT /api/sales/:id/cancel.
type CancelSaleRequest struct {
	Reason string `json:"reason"`
}

// CancelSaleResponse resultado de cancelar una venta.
type CancelSaleResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// SaleLineResponse línea de venta en respuestas, con utilidad calculada
// contra el costo congelado al momento de la venta.
type SaleLineResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Unit      string          `json:"unit"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Profit    decimal.Decimal `json:"profit"`
}

// SaleResponse venta completa (cabecera + líneas).
type SaleResponse struct {
	ID            string             `json:"id"`
	Code          string             `json:"code"`
	CustomerID    string             `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name,omitempty"`
	SaleDate      time.Time          `json:"sale_date"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Discount      decimal.Decimal    `json:"discount"`
	FinalAmount   decimal.Decimal    `json:"final_amount"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	Details       []SaleLineResponse `json:"details"`
}

// SaleListResponse página de ventas.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Page  PageResponse   `json:"page"`
}

// SaleListQuery filtros de GET /api/sales.
type SaleListQuery struct {
	CustomerID    string `query:"customer_id"`
	PaymentMethod string `query:"payment_method"`
	Status        string `query:"status"`
	FromDate      string `query:"from_date"` // YYYY-MM-DD, inclusive desde 00:00
	ToDate        string `query:"to_date"`   // YYYY-MM-DD, inclusive hasta 23:59:59
	PageRequest
}
