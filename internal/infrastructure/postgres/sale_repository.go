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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, code, customer_id, sale_date, total_amount, discount, final_amount, payment_method, status, notes, created_by, created_at, updated_at`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, code, customer_id, sale_date, total_amount, discount, final_amount, payment_method, status, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Code, sale.CustomerID, sale.SaleDate, sale.TotalAmount, sale.Discount,
		sale.FinalAmount, sale.PaymentMethod, sale.Status, sale.Notes, sale.CreatedBy,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de venta con su costo congelado.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	query := `
		INSERT INTO sale_details (id, sale_id, item_id, quantity, unit_price, cost_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.SaleID, detail.ItemID, detail.Quantity,
		detail.UnitPrice, detail.CostPrice, detail.Subtotal, detail.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get sale")
}

// GetForUpdate obtiene la cabecera y la bloquea (SELECT FOR UPDATE). Usar en la
// cancelación: dos cancelaciones concurrentes de la misma venta se serializan
// y la segunda ve el estado ya reembolsado.
func (r *SaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get sale for update")
}

// ListDetails lista las líneas de una venta con el resumen del artículo.
func (r *SaleRepo) ListDetails(saleID string) ([]repository.SaleDetailRow, error) {
	query := `
		SELECT d.id, d.sale_id, d.item_id, d.quantity, d.unit_price, d.cost_price, d.subtotal, d.created_at,
		       i.name, i.unit
		FROM sale_details d
		JOIN items i ON i.id = d.item_id
		WHERE d.sale_id = $1
		ORDER BY d.created_at, i.name`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale details: %w", err)
	}
	defer rows.Close()

	var list []repository.SaleDetailRow
	for rows.Next() {
		var row repository.SaleDetailRow
		d := &row.Detail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ItemID, &d.Quantity, &d.UnitPrice,
			&d.CostPrice, &d.Subtotal, &d.CreatedAt, &row.ItemName, &row.Unit); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// List lista ventas con filtros opcionales, las más recientes primero, con total.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, int, error) {
	ctx := context.Background()
	where := `WHERE deleted_at IS NULL`
	args := []any{}

	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		where += fmt.Sprintf(` AND customer_id = $%d`, len(args))
	}
	if filter.PaymentMethod != "" {
		args = append(args, filter.PaymentMethod)
		where += fmt.Sprintf(` AND payment_method = $%d`, len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		where += fmt.Sprintf(` AND sale_date >= $%d`, len(args))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		where += fmt.Sprintf(` AND sale_date <= $%d`, len(args))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM sales `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM sales %s ORDER BY sale_date DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		saleColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Code, &s.CustomerID, &s.SaleDate, &s.TotalAmount, &s.Discount,
			&s.FinalAmount, &s.PaymentMethod, &s.Status, &s.Notes, &s.CreatedBy,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}

// UpdateStatusAndNotes actualiza estado y notas de una venta (cancelación).
func (r *SaleRepo) UpdateStatusAndNotes(id, status, notes string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2, notes = $3, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id, status, notes,
	)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	return nil
}

// CountByCustomer cuenta las ventas no eliminadas de un cliente.
func (r *SaleRepo) CountByCustomer(customerID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM sales WHERE customer_id = $1 AND deleted_at IS NULL`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sales by customer: %w", err)
	}
	return count, nil
}

// CountByItem cuenta las ventas no eliminadas que incluyen un artículo.
func (r *SaleRepo) CountByItem(itemID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `
		SELECT count(DISTINCT s.id)
		FROM sales s
		JOIN sale_details d ON d.sale_id = s.id
		WHERE d.item_id = $1 AND s.deleted_at IS NULL`, itemID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sales by item: %w", err)
	}
	return count, nil
}

func (r *SaleRepo) scanOne(row pgx.Row, op string) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.Code, &s.CustomerID, &s.SaleDate, &s.TotalAmount, &s.Discount,
		&s.FinalAmount, &s.PaymentMethod, &s.Status, &s.Notes, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
