package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRangeQuery filtros de rango de fechas para reportes (YYYY-MM-DD).
type DateRangeQuery struct {
	FromDate string `query:"from_date"`
	ToDate   string `query:"to_date"`
}

// SalesSummaryResponse agregado de ventas completadas.
type SalesSummaryResponse struct {
	TotalSales    int             `json:"total_sales"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AvgSaleValue  decimal.Decimal `json:"avg_sale_value"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
}

// RevenuePointResponse ingresos de un período (día, semana o mes).
type RevenuePointResponse struct {
	Period    string          `json:"period"`
	SaleCount int             `json:"sale_count"`
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
}

// TopItemResponse artículo más vendido.
type TopItemResponse struct {
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// ItemProfitResponse rentabilidad por artículo (contra el costo congelado por línea).
type ItemProfitResponse struct {
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	MarginPct decimal.Decimal `json:"margin_pct"`
}

// InventoryValueResponse valor del inventario a costo promedio.
type InventoryValueResponse struct {
	TotalItems    int             `json:"total_items"`
	TotalUnits    int             `json:"total_units"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
}

// PaymentMethodResponse ventas por método de pago.
type PaymentMethodResponse struct {
	PaymentMethod string          `json:"payment_method"`
	Count         int             `json:"count"`
	Total         decimal.Decimal `json:"total"`
}

// DashboardResponse resumen para la pantalla principal.
type DashboardResponse struct {
	Today       SalesSummaryResponse   `json:"today"`
	ThisMonth   SalesSummaryResponse   `json:"this_month"`
	LastMonth   SalesSummaryResponse   `json:"last_month"`
	LowStock    []InventoryRowResponse `json:"low_stock"`
	TopProducts []TopItemResponse      `json:"top_products"`
	GeneratedAt time.Time              `json:"generated_at"`
}
