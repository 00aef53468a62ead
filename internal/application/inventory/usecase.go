package inventory

import (
	"fmt"
	"time"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// QueryUseCase consultas y operaciones directas de inventario: listados,
// stock mínimo, ajuste manual. Las lecturas usan repositorios del pool; el
// ajuste pasa por el txRunner para tomar el lock de la fila.
type QueryUseCase struct {
	txRunner    TxRunner
	invRepo     repository.InventoryRepository
	itemRepo    repository.ItemRepository
	stockInRepo repository.StockInRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(txRunner TxRunner, invRepo repository.InventoryRepository, itemRepo repository.ItemRepository, stockInRepo repository.StockInRepository) *QueryUseCase {
	return &QueryUseCase{txRunner: txRunner, invRepo: invRepo, itemRepo: itemRepo, stockInRepo: stockInRepo}
}

// List devuelve el inventario paginado, con búsqueda y filtro de stock bajo.
func (uc *QueryUseCase) List(search string, lowStockOnly bool, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	rows, total, err := uc.invRepo.List(repository.InventoryFilter{
		Search:       search,
		LowStockOnly: lowStockOnly,
		Limit:        page.Limit,
		Offset:       page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toInventoryRowResponse(row))
	}
	return &dto.InventoryListResponse{
		Inventory: out,
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByItem devuelve la fila de inventario de un artículo.
func (uc *QueryUseCase) GetByItem(itemID string) (*dto.InventoryRowResponse, error) {
	inv, err := uc.invRepo.GetByItemID(itemID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInventoryRowResponse(repository.InventoryRow{
		Inventory: *inv,
		ItemCode:  item.Code,
		ItemName:  item.Name,
		Unit:      item.Unit,
	})
	return &resp, nil
}

// LowStock devuelve los artículos en o por debajo de su stock mínimo,
// ordenados por cantidad ascendente.
func (uc *QueryUseCase) LowStock() ([]dto.InventoryRowResponse, error) {
	rows, err := uc.invRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toInventoryRowResponse(row))
	}
	return out, nil
}

// UpdateMinStock actualiza el umbral de stock mínimo de un artículo.
func (uc *QueryUseCase) UpdateMinStock(itemID string, in dto.UpdateMinStockRequest) error {
	if in.MinStock < 0 {
		return fmt.Errorf("%w: el stock mínimo no puede ser negativo", domain.ErrInvalidInput)
	}
	inv, err := uc.invRepo.GetByItemID(itemID)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invRepo.UpdateMinStock(itemID, in.MinStock)
}

// History devuelve el historial paginado de recepciones con sus líneas.
func (uc *QueryUseCase) History(fromDate, toDate *time.Time, page dto.PageRequest) (*dto.StockInListResponse, error) {
	page.DefaultPage()
	stockIns, total, err := uc.stockInRepo.List(repository.StockInFilter{
		FromDate: fromDate,
		ToDate:   toDate,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockInResponse, 0, len(stockIns))
	for _, si := range stockIns {
		details, err := uc.stockInRepo.ListDetails(si.ID)
		if err != nil {
			return nil, err
		}
		lines := make([]dto.StockInLineResponse, 0, len(details))
		for _, d := range details {
			lines = append(lines, dto.StockInLineResponse{
				ID:         d.Detail.ID,
				ItemID:     d.Detail.ItemID,
				ItemName:   d.ItemName,
				Unit:       d.Unit,
				Quantity:   d.Detail.Quantity,
				CostPrice:  d.Detail.CostPrice,
				Subtotal:   d.Detail.Subtotal,
				ExpiryDate: d.Detail.ExpiryDate,
			})
		}
		out = append(out, dto.StockInResponse{
			ID:          si.ID,
			Code:        si.Code,
			ImportDate:  si.ImportDate,
			TotalAmount: si.TotalAmount,
			Status:      si.Status,
			Notes:       si.Notes,
			Details:     lines,
		})
	}
	return &dto.StockInListResponse{
		StockIns: out,
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func toInventoryRowResponse(row repository.InventoryRow) dto.InventoryRowResponse {
	return dto.InventoryRowResponse{
		ItemID:       row.Inventory.ItemID,
		ItemCode:     row.ItemCode,
		ItemName:     row.ItemName,
		ItemTypeName: row.ItemTypeName,
		Unit:         row.Unit,
		Quantity:     row.Inventory.Quantity,
		MinStock:     row.Inventory.MinStock,
		AvgCost:      row.Inventory.AvgCost,
		Location:     row.Inventory.Location,
		IsLowStock:   row.Inventory.IsLowStock(),
		LastUpdated:  row.Inventory.LastUpdated,
	}
}
