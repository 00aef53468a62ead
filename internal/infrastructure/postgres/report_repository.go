package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcastro/petshop-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y dashboard.
// Todas las consultas son parametrizadas; las agregaciones usan COALESCE para
// devolver cero en períodos sin ventas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesSummary devuelve el agregado de ventas completadas del rango.
// Las ventas reembolsadas y canceladas quedan fuera de todos los reportes.
func (r *ReportRepo) GetSalesSummary(ctx context.Context, from, to time.Time) (repository.SalesSummary, error) {
	const query = `
	SELECT
	    COUNT(*)                                  AS total_sales,
	    COALESCE(SUM(final_amount), 0)            AS total_revenue,
	    COALESCE(AVG(final_amount), 0)            AS avg_sale_value,
	    COALESCE(SUM(discount), 0)                AS total_discount
	FROM sales
	WHERE status = 'completed'
	  AND deleted_at IS NULL
	  AND sale_date BETWEEN $1 AND $2`

	var s repository.SalesSummary
	err := r.pool.QueryRow(ctx, query, from, to).Scan(
		&s.TotalSales, &s.TotalRevenue, &s.AvgSaleValue, &s.TotalDiscount,
	)
	if err != nil {
		return repository.SalesSummary{}, fmt.Errorf("reports.GetSalesSummary: %w", err)
	}
	return s, nil
}

// GetRevenueByPeriod agrupa ingresos y utilidad por día, semana o mes.
// La utilidad se calcula contra el costo congelado en cada línea, no contra el
// costo promedio actual.
func (r *ReportRepo) GetRevenueByPeriod(ctx context.Context, groupBy string, from, to time.Time) ([]repository.RevenuePoint, error) {
	// groupBy ya viene validado por el caso de uso; el switch evita que un
	// valor inesperado llegue a date_trunc.
	var trunc string
	switch groupBy {
	case "day":
		trunc = "day"
	case "week":
		trunc = "week"
	case "month":
		trunc = "month"
	default:
		return nil, fmt.Errorf("reports.GetRevenueByPeriod: agrupación %q", groupBy)
	}

	query := fmt.Sprintf(`
	SELECT
	    to_char(date_trunc('%s', s.sale_date), 'YYYY-MM-DD')          AS period,
	    COUNT(DISTINCT s.id)                                           AS sale_count,
	    COALESCE(SUM(d.subtotal), 0)                                   AS revenue,
	    COALESCE(SUM((d.unit_price - d.cost_price) * d.quantity), 0)   AS profit
	FROM sales s
	JOIN sale_details d ON d.sale_id = s.id
	WHERE s.status = 'completed'
	  AND s.deleted_at IS NULL
	  AND s.sale_date BETWEEN $1 AND $2
	GROUP BY date_trunc('%s', s.sale_date)
	ORDER BY date_trunc('%s', s.sale_date)`, trunc, trunc, trunc)

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.GetRevenueByPeriod: %w", err)
	}
	defer rows.Close()

	var results []repository.RevenuePoint
	for rows.Next() {
		var p repository.RevenuePoint
		if err := rows.Scan(&p.Period, &p.SaleCount, &p.Revenue, &p.Profit); err != nil {
			return nil, fmt.Errorf("reports.GetRevenueByPeriod scan: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// GetTopSellingItems devuelve los artículos con más unidades vendidas del rango.
func (r *ReportRepo) GetTopSellingItems(ctx context.Context, from, to time.Time, limit int) ([]repository.TopItemResult, error) {
	const query = `
	SELECT
	    d.item_id,
	    i.name                           AS item_name,
	    SUM(d.quantity)::INT             AS units_sold,
	    COALESCE(SUM(d.subtotal), 0)     AS revenue
	FROM sales s
	JOIN sale_details d ON d.sale_id = s.id
	JOIN items i        ON i.id      = d.item_id
	WHERE s.status = 'completed'
	  AND s.deleted_at IS NULL
	  AND s.sale_date BETWEEN $1 AND $2
	GROUP BY d.item_id, i.name
	ORDER BY units_sold DESC, revenue DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopSellingItems: %w", err)
	}
	defer rows.Close()

	var results []repository.TopItemResult
	for rows.Next() {
		var t repository.TopItemResult
		if err := rows.Scan(&t.ItemID, &t.ItemName, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("reports.GetTopSellingItems scan: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// GetItemProfitability devuelve la rentabilidad por artículo, mayor utilidad primero.
func (r *ReportRepo) GetItemProfitability(ctx context.Context, from, to time.Time, limit int) ([]repository.ItemProfitResult, error) {
	const query = `
	SELECT
	    d.item_id,
	    i.name                                                         AS item_name,
	    SUM(d.quantity)::INT                                           AS units_sold,
	    COALESCE(SUM(d.subtotal), 0)                                   AS revenue,
	    COALESCE(SUM(d.cost_price * d.quantity), 0)                    AS cost,
	    COALESCE(SUM((d.unit_price - d.cost_price) * d.quantity), 0)   AS profit
	FROM sales s
	JOIN sale_details d ON d.sale_id = s.id
	JOIN items i        ON i.id      = d.item_id
	WHERE s.status = 'completed'
	  AND s.deleted_at IS NULL
	  AND s.sale_date BETWEEN $1 AND $2
	GROUP BY d.item_id, i.name
	ORDER BY profit DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetItemProfitability: %w", err)
	}
	defer rows.Close()

	var results []repository.ItemProfitResult
	for rows.Next() {
		var p repository.ItemProfitResult
		if err := rows.Scan(&p.ItemID, &p.ItemName, &p.UnitsSold, &p.Revenue, &p.Cost, &p.Profit); err != nil {
			return nil, fmt.Errorf("reports.GetItemProfitability scan: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// GetInventoryValue devuelve el valor del inventario a costo promedio actual.
func (r *ReportRepo) GetInventoryValue(ctx context.Context) (repository.InventoryValueResult, error) {
	const query = `
	SELECT
	    COUNT(*)                                                       AS total_items,
	    COALESCE(SUM(inv.quantity), 0)::INT                            AS total_units,
	    COALESCE(SUM(inv.quantity * COALESCE(inv.avg_cost, 0)), 0)     AS total_value,
	    COUNT(*) FILTER (WHERE inv.quantity <= inv.min_stock)::INT     AS low_stock_count
	FROM inventory inv
	JOIN items i ON i.id = inv.item_id AND i.deleted_at IS NULL
	WHERE inv.deleted_at IS NULL`

	var v repository.InventoryValueResult
	err := r.pool.QueryRow(ctx, query).Scan(&v.TotalItems, &v.TotalUnits, &v.TotalValue, &v.LowStockCount)
	if err != nil {
		return repository.InventoryValueResult{}, fmt.Errorf("reports.GetInventoryValue: %w", err)
	}
	return v, nil
}

// GetSalesByPaymentMethod agrupa las ventas completadas por método de pago.
func (r *ReportRepo) GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]repository.PaymentMethodResult, error) {
	const query = `
	SELECT
	    payment_method,
	    COUNT(*)                          AS sale_count,
	    COALESCE(SUM(final_amount), 0)    AS total
	FROM sales
	WHERE status = 'completed'
	  AND deleted_at IS NULL
	  AND sale_date BETWEEN $1 AND $2
	GROUP BY payment_method
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.GetSalesByPaymentMethod: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentMethodResult
	for rows.Next() {
		var p repository.PaymentMethodResult
		if err := rows.Scan(&p.PaymentMethod, &p.Count, &p.Total); err != nil {
			return nil, fmt.Errorf("reports.GetSalesByPaymentMethod scan: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// GetCustomerStats devuelve el agregado histórico de compras de un cliente,
// con sus artículos más comprados (top 5).
func (r *ReportRepo) GetCustomerStats(ctx context.Context, customerID string, from, to time.Time) (repository.CustomerStats, error) {
	const summaryQuery = `
	SELECT
	    COUNT(*)                           AS sale_count,
	    COALESCE(SUM(final_amount), 0)     AS total_spent,
	    COALESCE(AVG(final_amount), 0)     AS avg_sale,
	    MAX(sale_date)                     AS last_sale_at
	FROM sales
	WHERE customer_id = $1
	  AND status = 'completed'
	  AND deleted_at IS NULL
	  AND sale_date BETWEEN $2 AND $3`

	var stats repository.CustomerStats
	err := r.pool.QueryRow(ctx, summaryQuery, customerID, from, to).Scan(
		&stats.SaleCount, &stats.TotalSpent, &stats.AvgSale, &stats.LastSaleAt,
	)
	if err != nil {
		return repository.CustomerStats{}, fmt.Errorf("reports.GetCustomerStats: %w", err)
	}

	const topItemsQuery = `
	SELECT
	    d.item_id,
	    i.name                           AS item_name,
	    SUM(d.quantity)::INT             AS units_sold,
	    COALESCE(SUM(d.subtotal), 0)     AS revenue
	FROM sales s
	JOIN sale_details d ON d.sale_id = s.id
	JOIN items i        ON i.id      = d.item_id
	WHERE s.customer_id = $1
	  AND s.status = 'completed'
	  AND s.deleted_at IS NULL
	  AND s.sale_date BETWEEN $2 AND $3
	GROUP BY d.item_id, i.name
	ORDER BY units_sold DESC
	LIMIT 5`

	rows, err := r.pool.Query(ctx, topItemsQuery, customerID, from, to)
	if err != nil {
		return repository.CustomerStats{}, fmt.Errorf("reports.GetCustomerStats top items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t repository.TopItemResult
		if err := rows.Scan(&t.ItemID, &t.ItemName, &t.UnitsSold, &t.Revenue); err != nil {
			return repository.CustomerStats{}, fmt.Errorf("reports.GetCustomerStats scan: %w", err)
		}
		stats.TopItems = append(stats.TopItems, t)
	}
	return stats, rows.Err()
}
