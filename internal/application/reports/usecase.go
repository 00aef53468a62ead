// Package reports contiene los casos de uso de reportes de negocio y el
// dashboard de la tienda.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

const dashboardTopItems = 5 // artículos en el widget del dashboard

// UseCase genera los reportes agregados a partir del repositorio read-only.
// No accede directamente a las tablas de ventas; delega todo en el repositorio.
type UseCase struct {
	reportRepo repository.ReportRepository
	invRepo    repository.InventoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(reportRepo repository.ReportRepository, invRepo repository.InventoryRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo, invRepo: invRepo}
}

// Dashboard construye el resumen de la pantalla principal: ventas de hoy, del
// mes en curso y del mes anterior, stock bajo y los artículos más vendidos del mes.
//
// Cinco consultas en paralelo; un error en cualquiera aborta el resumen completo.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	lastMonthEnd := monthStart.Add(-time.Nanosecond)

	type summaryResult struct {
		summary repository.SalesSummary
		err     error
	}
	type lowStockResult struct {
		rows []repository.InventoryRow
		err  error
	}
	type topItemsResult struct {
		items []repository.TopItemResult
		err   error
	}

	todayCh := make(chan summaryResult, 1)
	monthCh := make(chan summaryResult, 1)
	lastMonthCh := make(chan summaryResult, 1)
	lowStockCh := make(chan lowStockResult, 1)
	topItemsCh := make(chan topItemsResult, 1)

	go func() {
		s, err := uc.reportRepo.GetSalesSummary(ctx, todayStart, todayEnd)
		todayCh <- summaryResult{s, err}
	}()
	go func() {
		s, err := uc.reportRepo.GetSalesSummary(ctx, monthStart, todayEnd)
		monthCh <- summaryResult{s, err}
	}()
	go func() {
		s, err := uc.reportRepo.GetSalesSummary(ctx, lastMonthStart, lastMonthEnd)
		lastMonthCh <- summaryResult{s, err}
	}()
	go func() {
		rows, err := uc.invRepo.ListLowStock()
		lowStockCh <- lowStockResult{rows, err}
	}()
	go func() {
		items, err := uc.reportRepo.GetTopSellingItems(ctx, monthStart, todayEnd, dashboardTopItems)
		topItemsCh <- topItemsResult{items, err}
	}()

	today := <-todayCh
	month := <-monthCh
	lastMonth := <-lastMonthCh
	lowStock := <-lowStockCh
	topItems := <-topItemsCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if lastMonth.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes anterior: %w", lastMonth.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if topItems.err != nil {
		return nil, fmt.Errorf("dashboard: más vendidos: %w", topItems.err)
	}

	lowStockRows := make([]dto.InventoryRowResponse, 0, len(lowStock.rows))
	for _, row := range lowStock.rows {
		lowStockRows = append(lowStockRows, dto.InventoryRowResponse{
			ItemID:       row.Inventory.ItemID,
			ItemCode:     row.ItemCode,
			ItemName:     row.ItemName,
			ItemTypeName: row.ItemTypeName,
			Unit:         row.Unit,
			Quantity:     row.Inventory.Quantity,
			MinStock:     row.Inventory.MinStock,
			AvgCost:      row.Inventory.AvgCost,
			Location:     row.Inventory.Location,
			IsLowStock:   true,
			LastUpdated:  row.Inventory.LastUpdated,
		})
	}
	return &dto.DashboardResponse{
		Today:       toSummaryResponse(today.summary),
		ThisMonth:   toSummaryResponse(month.summary),
		LastMonth:   toSummaryResponse(lastMonth.summary),
		LowStock:    lowStockRows,
		TopProducts: toTopItemResponses(topItems.items),
		GeneratedAt: now,
	}, nil
}

// RevenueByPeriod agrupa ingresos y utilidad por día, semana o mes.
func (uc *UseCase) RevenueByPeriod(ctx context.Context, groupBy string, q dto.DateRangeQuery) ([]dto.RevenuePointResponse, error) {
	switch groupBy {
	case "day", "week", "month":
	default:
		return nil, fmt.Errorf("%w: agrupación %q (use day, week o month)", domain.ErrInvalidInput, groupBy)
	}
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	points, err := uc.reportRepo.GetRevenueByPeriod(ctx, groupBy, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RevenuePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.RevenuePointResponse{
			Period:    p.Period,
			SaleCount: p.SaleCount,
			Revenue:   p.Revenue.Round(2),
			Profit:    p.Profit.Round(2),
		})
	}
	return out, nil
}

// TopSelling devuelve los artículos más vendidos del rango.
func (uc *UseCase) TopSelling(ctx context.Context, q dto.DateRangeQuery, limit int) ([]dto.TopItemResponse, error) {
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	items, err := uc.reportRepo.GetTopSellingItems(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	return toTopItemResponses(items), nil
}

// Profitability devuelve la rentabilidad por artículo, calculada contra el
// costo congelado en cada línea de venta, con margen porcentual.
func (uc *UseCase) Profitability(ctx context.Context, q dto.DateRangeQuery, limit int) ([]dto.ItemProfitResponse, error) {
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	results, err := uc.reportRepo.GetItemProfitability(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemProfitResponse, 0, len(results))
	for _, r := range results {
		margin := decimal.Zero
		if r.Revenue.GreaterThan(decimal.Zero) {
			margin = r.Profit.Div(r.Revenue).Mul(decimal.NewFromInt(100)).Round(2)
		}
		out = append(out, dto.ItemProfitResponse{
			ItemID:    r.ItemID,
			ItemName:  r.ItemName,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue.Round(2),
			Cost:      r.Cost.Round(2),
			Profit:    r.Profit.Round(2),
			MarginPct: margin,
		})
	}
	return out, nil
}

// InventoryValue devuelve el valor total del inventario a costo promedio.
func (uc *UseCase) InventoryValue(ctx context.Context) (*dto.InventoryValueResponse, error) {
	result, err := uc.reportRepo.GetInventoryValue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryValueResponse{
		TotalItems:    result.TotalItems,
		TotalUnits:    result.TotalUnits,
		TotalValue:    result.TotalValue.Round(2),
		LowStockCount: result.LowStockCount,
	}, nil
}

// SalesByPaymentMethod agrupa las ventas completadas por método de pago.
func (uc *UseCase) SalesByPaymentMethod(ctx context.Context, q dto.DateRangeQuery) ([]dto.PaymentMethodResponse, error) {
	from, to, err := parseRange(q)
	if err != nil {
		return nil, err
	}
	results, err := uc.reportRepo.GetSalesByPaymentMethod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.PaymentMethodResponse{
			PaymentMethod: r.PaymentMethod,
			Count:         r.Count,
			Total:         r.Total.Round(2),
		})
	}
	return out, nil
}

// parseRange interpreta el rango de fechas del query. Sin fechas: últimos 30
// días. ToDate es inclusivo hasta el final del día.
func parseRange(q dto.DateRangeQuery) (time.Time, time.Time, error) {
	now := time.Now()
	to := now
	if q.ToDate != "" {
		t, err := time.ParseInLocation("2006-01-02", q.ToDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: to_date %q", domain.ErrInvalidInput, q.ToDate)
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	from := to.AddDate(0, 0, -30)
	if q.FromDate != "" {
		t, err := time.ParseInLocation("2006-01-02", q.FromDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: from_date %q", domain.ErrInvalidInput, q.FromDate)
		}
		from = t
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from_date posterior a to_date", domain.ErrInvalidInput)
	}
	return from, to, nil
}

func toSummaryResponse(s repository.SalesSummary) dto.SalesSummaryResponse {
	return dto.SalesSummaryResponse{
		TotalSales:    s.TotalSales,
		TotalRevenue:  s.TotalRevenue.Round(2),
		AvgSaleValue:  s.AvgSaleValue.Round(2),
		TotalDiscount: s.TotalDiscount.Round(2),
	}
}

func toTopItemResponses(items []repository.TopItemResult) []dto.TopItemResponse {
	out := make([]dto.TopItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.TopItemResponse{
			ItemID:    item.ItemID,
			ItemName:  item.ItemName,
			UnitsSold: item.UnitsSold,
			Revenue:   item.Revenue.Round(2),
		})
	}
	return out
}
