package repository

import "github.com/jcastro/petshop-api/internal/domain/entity"

// InventoryRow fila de inventario con el resumen del artículo asociado (para listados).
type InventoryRow struct {
	Inventory    entity.Inventory
	ItemCode     string
	ItemName     string
	Unit         string
	ItemTypeName string
}

// InventoryFilter parámetros de listado de inventario.
type InventoryFilter struct {
	Search       string
	LowStockOnly bool
	Limit        int
	Offset       int
}

// InventoryRepository define el puerto para consultar/actualizar el inventario por artículo.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usarlo siempre dentro de una
// transacción antes de mutar Quantity o AvgCost.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByItemID(itemID string) (*entity.Inventory, error)
	GetForUpdate(itemID string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	UpdateMinStock(itemID string, minStock int) error
	List(filter InventoryFilter) ([]InventoryRow, int, error)
	ListLowStock() ([]InventoryRow, error)
	SoftDeleteByItemID(itemID string) error
}
