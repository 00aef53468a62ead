package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
	"github.com/jcastro/petshop-api/pkg/textutil"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, item_id, quantity, min_stock, avg_cost, location, last_updated, created_at, updated_at`

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una fila de inventario nueva.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory (id, item_id, quantity, min_stock, avg_cost, location, last_updated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ItemID, inv.Quantity, inv.MinStock, inv.AvgCost, inv.Location, inv.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByItemID obtiene la fila de inventario de un artículo. (nil, nil) si no existe.
func (r *InventoryRepo) GetByItemID(itemID string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE item_id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, itemID), "get inventory")
}

// GetForUpdate obtiene la fila de inventario y la bloquea (SELECT FOR UPDATE).
// Usar siempre dentro de una transacción antes de mutar Quantity o AvgCost:
// dos operaciones concurrentes sobre el mismo artículo se serializan aquí.
func (r *InventoryRepo) GetForUpdate(itemID string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE item_id = $1 AND deleted_at IS NULL FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, itemID), "get inventory for update")
}

// Update persiste cantidad, mínimo y costo promedio de una fila existente.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET quantity = $2, min_stock = $3, avg_cost = $4, location = $5,
			last_updated = $6, updated_at = now()
		WHERE item_id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		inv.ItemID, inv.Quantity, inv.MinStock, inv.AvgCost, inv.Location, inv.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// UpdateMinStock actualiza solo el umbral de stock mínimo.
func (r *InventoryRepo) UpdateMinStock(itemID string, minStock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory SET min_stock = $2, updated_at = now() WHERE item_id = $1 AND deleted_at IS NULL`,
		itemID, minStock,
	)
	if err != nil {
		return fmt.Errorf("update min stock: %w", err)
	}
	return nil
}

const inventoryRowQuery = `
	SELECT inv.id, inv.item_id, inv.quantity, inv.min_stock, inv.avg_cost, inv.location,
	       inv.last_updated, inv.created_at, inv.updated_at,
	       i.code, i.name, i.unit, coalesce(t.name, '')
	FROM inventory inv
	JOIN items i ON i.id = inv.item_id AND i.deleted_at IS NULL
	LEFT JOIN item_types t ON t.id = i.item_type_id AND t.deleted_at IS NULL
	WHERE inv.deleted_at IS NULL`

// List lista el inventario con el resumen del artículo, paginado, con total.
func (r *InventoryRepo) List(filter repository.InventoryFilter) ([]repository.InventoryRow, int, error) {
	ctx := context.Background()
	where := ""
	args := []any{}

	if filter.Search != "" {
		args = append(args, textutil.Normalize(filter.Search))
		where += fmt.Sprintf(` AND (i.name_normalized LIKE '%%' || $%d || '%%' OR lower(i.code) LIKE '%%' || $%d || '%%')`, len(args), len(args))
	}
	if filter.LowStockOnly {
		where += ` AND inv.quantity <= inv.min_stock`
	}

	countQuery := `
		SELECT count(*) FROM inventory inv
		JOIN items i ON i.id = inv.item_id AND i.deleted_at IS NULL
		WHERE inv.deleted_at IS NULL` + where
	var total int
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}

	query := fmt.Sprintf(`%s%s ORDER BY i.name LIMIT $%d OFFSET $%d`,
		inventoryRowQuery, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	list, err := scanInventoryRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListLowStock lista las filas en o por debajo del mínimo, las más críticas primero.
func (r *InventoryRepo) ListLowStock() ([]repository.InventoryRow, error) {
	query := inventoryRowQuery + ` AND inv.quantity <= inv.min_stock
	ORDER BY inv.quantity - inv.min_stock, i.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanInventoryRows(rows)
}

// SoftDeleteByItemID marca la fila de inventario del artículo como eliminada.
func (r *InventoryRepo) SoftDeleteByItemID(itemID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory SET deleted_at = now(), updated_at = now() WHERE item_id = $1 AND deleted_at IS NULL`, itemID)
	if err != nil {
		return fmt.Errorf("soft delete inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) scanOne(row pgx.Row, op string) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(&inv.ID, &inv.ItemID, &inv.Quantity, &inv.MinStock, &inv.AvgCost,
		&inv.Location, &inv.LastUpdated, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &inv, nil
}

func scanInventoryRows(rows pgx.Rows) ([]repository.InventoryRow, error) {
	var list []repository.InventoryRow
	for rows.Next() {
		var row repository.InventoryRow
		inv := &row.Inventory
		if err := rows.Scan(&inv.ID, &inv.ItemID, &inv.Quantity, &inv.MinStock, &inv.AvgCost,
			&inv.Location, &inv.LastUpdated, &inv.CreatedAt, &inv.UpdatedAt,
			&row.ItemCode, &row.ItemName, &row.Unit, &row.ItemTypeName); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
