package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
	"github.com/jcastro/petshop-api/pkg/textutil"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, code, name, item_type_id, description, selling_price, unit, image_path, is_active, created_at, updated_at`

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
// La columna name_normalized guarda el nombre en minúsculas y sin acentos para
// que la búsqueda compare normalizado contra normalizado.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, code, name, name_normalized, item_type_id, description, selling_price, unit, image_path, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, textutil.Normalize(item.Name), item.ItemTypeID,
		item.Description, item.SellingPrice, item.Unit, item.ImagePath, item.IsActive,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe o fue eliminado.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item")
}

// GetByName obtiene un artículo por nombre exacto entre los no eliminados.
func (r *ItemRepo) GetByName(name string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get item by name")
}

// List busca artículos. Search compara contra nombre normalizado y código, sin
// distinguir mayúsculas ni acentos.
func (r *ItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, int, error) {
	ctx := context.Background()
	where := `WHERE deleted_at IS NULL`
	args := []any{}

	if filter.Search != "" {
		args = append(args, textutil.Normalize(filter.Search))
		where += fmt.Sprintf(` AND (name_normalized LIKE '%%' || $%d || '%%' OR lower(code) LIKE '%%' || $%d || '%%')`, len(args), len(args))
	}
	if filter.ItemTypeID != "" {
		args = append(args, filter.ItemTypeID)
		where += fmt.Sprintf(` AND item_type_id = $%d`, len(args))
	}
	if filter.ActiveOnly {
		where += ` AND is_active`
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM items `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM items %s ORDER BY name LIMIT $%d OFFSET $%d`,
		itemColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Code, &it.Name, &it.ItemTypeID, &it.Description,
			&it.SellingPrice, &it.Unit, &it.ImagePath, &it.IsActive, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, total, rows.Err()
}

// Update actualiza un artículo existente y recalcula el nombre normalizado.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, name_normalized = $3, item_type_id = $4, description = $5,
			selling_price = $6, unit = $7, image_path = $8, is_active = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, textutil.Normalize(item.Name), item.ItemTypeID, item.Description,
		item.SellingPrice, item.Unit, item.ImagePath, item.IsActive, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// SoftDelete marca el artículo como eliminado.
func (r *ItemRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Code, &it.Name, &it.ItemTypeID, &it.Description,
		&it.SellingPrice, &it.Unit, &it.ImagePath, &it.IsActive, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
