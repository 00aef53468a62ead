package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary agregado de ventas completadas en un rango.
type SalesSummary struct {
	TotalSales    int
	TotalRevenue  decimal.Decimal
	AvgSaleValue  decimal.Decimal
	TotalDiscount decimal.Decimal
}

// RevenuePoint ingresos agrupados por período (día, semana o mes).
type RevenuePoint struct {
	Period    string
	SaleCount int
	Revenue   decimal.Decimal
	Profit    decimal.Decimal
}

// TopItemResult artículo con mayor venta en el rango.
type TopItemResult struct {
	ItemID    string
	ItemName  string
	UnitsSold int
	Revenue   decimal.Decimal
}

// ItemProfitResult rentabilidad por artículo, calculada contra el costo
// congelado en cada línea de venta.
type ItemProfitResult struct {
	ItemID    string
	ItemName  string
	UnitsSold int
	Revenue   decimal.Decimal
	Cost      decimal.Decimal
	Profit    decimal.Decimal
}

// InventoryValueResult valor total del inventario a costo promedio.
type InventoryValueResult struct {
	TotalItems    int
	TotalUnits    int
	TotalValue    decimal.Decimal
	LowStockCount int
}

// PaymentMethodResult ventas agrupadas por método de pago.
type PaymentMethodResult struct {
	PaymentMethod string
	Count         int
	Total         decimal.Decimal
}

// CustomerStats agregado histórico de compras de un cliente.
type CustomerStats struct {
	SaleCount  int
	TotalSpent decimal.Decimal
	AvgSale    decimal.Decimal
	LastSaleAt *time.Time
	TopItems   []TopItemResult
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
// Las implementaciones deben usar exclusivamente consultas parametrizadas.
type ReportRepository interface {
	GetSalesSummary(ctx context.Context, from, to time.Time) (SalesSummary, error)
	GetRevenueByPeriod(ctx context.Context, groupBy string, from, to time.Time) ([]RevenuePoint, error)
	GetTopSellingItems(ctx context.Context, from, to time.Time, limit int) ([]TopItemResult, error)
	GetItemProfitability(ctx context.Context, from, to time.Time, limit int) ([]ItemProfitResult, error)
	GetInventoryValue(ctx context.Context) (InventoryValueResult, error)
	GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]PaymentMethodResult, error)
	GetCustomerStats(ctx context.Context, customerID string, from, to time.Time) (CustomerStats, error)
}
