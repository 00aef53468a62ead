package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

const stockInColumns = `id, code, import_date, total_amount, status, notes, created_by, created_at, updated_at`

// StockInRepo implementación de StockInRepository sobre PostgreSQL (usable con pool o tx).
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// Create persiste la cabecera de una recepción.
func (r *StockInRepo) Create(stockIn *entity.StockIn) error {
	query := `
		INSERT INTO stock_ins (id, code, import_date, total_amount, status, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		stockIn.ID, stockIn.Code, stockIn.ImportDate, stockIn.TotalAmount,
		stockIn.Status, stockIn.Notes, stockIn.CreatedBy, stockIn.CreatedAt, stockIn.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock in: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de recepción.
func (r *StockInRepo) CreateDetail(detail *entity.StockInDetail) error {
	query := `
		INSERT INTO stock_in_details (id, stock_in_id, item_id, quantity, cost_price, expiry_date, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.StockInID, detail.ItemID, detail.Quantity,
		detail.CostPrice, detail.ExpiryDate, detail.Subtotal, detail.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock in detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una recepción. (nil, nil) si no existe.
func (r *StockInRepo) GetByID(id string) (*entity.StockIn, error) {
	query := `SELECT ` + stockInColumns + ` FROM stock_ins WHERE id = $1 AND deleted_at IS NULL`
	var si entity.StockIn
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&si.ID, &si.Code, &si.ImportDate, &si.TotalAmount, &si.Status,
		&si.Notes, &si.CreatedBy, &si.CreatedAt, &si.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock in: %w", err)
	}
	return &si, nil
}

// ListDetails lista las líneas de una recepción con el resumen del artículo.
func (r *StockInRepo) ListDetails(stockInID string) ([]repository.StockInDetailRow, error) {
	query := `
		SELECT d.id, d.stock_in_id, d.item_id, d.quantity, d.cost_price, d.expiry_date, d.subtotal, d.created_at,
		       i.name, i.unit
		FROM stock_in_details d
		JOIN items i ON i.id = d.item_id
		WHERE d.stock_in_id = $1
		ORDER BY d.created_at, i.name`
	rows, err := r.q.Query(context.Background(), query, stockInID)
	if err != nil {
		return nil, fmt.Errorf("list stock in details: %w", err)
	}
	defer rows.Close()

	var list []repository.StockInDetailRow
	for rows.Next() {
		var row repository.StockInDetailRow
		d := &row.Detail
		if err := rows.Scan(&d.ID, &d.StockInID, &d.ItemID, &d.Quantity, &d.CostPrice,
			&d.ExpiryDate, &d.Subtotal, &d.CreatedAt, &row.ItemName, &row.Unit); err != nil {
			return nil, fmt.Errorf("scan stock in detail: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// List lista recepciones por rango de fechas, las más recientes primero, con total.
func (r *StockInRepo) List(filter repository.StockInFilter) ([]*entity.StockIn, int, error) {
	ctx := context.Background()
	where := `WHERE deleted_at IS NULL`
	args := []any{}

	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		where += fmt.Sprintf(` AND import_date >= $%d`, len(args))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		where += fmt.Sprintf(` AND import_date <= $%d`, len(args))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM stock_ins `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock ins: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM stock_ins %s ORDER BY import_date DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		stockInColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock ins: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockIn
	for rows.Next() {
		var si entity.StockIn
		if err := rows.Scan(&si.ID, &si.Code, &si.ImportDate, &si.TotalAmount, &si.Status,
			&si.Notes, &si.CreatedBy, &si.CreatedAt, &si.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan stock in: %w", err)
		}
		list = append(list, &si)
	}
	return list, total, rows.Err()
}
