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

var _ repository.ItemTypeRepository = (*ItemTypeRepo)(nil)

// ItemTypeRepo implementación de ItemTypeRepository sobre PostgreSQL (usable con pool o tx).
type ItemTypeRepo struct {
	q Querier
}

// NewItemTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemTypeRepository(q Querier) *ItemTypeRepo {
	return &ItemTypeRepo{q: q}
}

// Create persiste una categoría nueva.
func (r *ItemTypeRepo) Create(itemType *entity.ItemType) error {
	query := `
		INSERT INTO item_types (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		itemType.ID, itemType.Name, itemType.Description, itemType.IsActive,
		itemType.CreatedAt, itemType.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item type: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe o fue eliminada.
func (r *ItemTypeRepo) GetByID(id string) (*entity.ItemType, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM item_types WHERE id = $1 AND deleted_at IS NULL`
	var it entity.ItemType
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.IsActive, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item type: %w", err)
	}
	return &it, nil
}

// GetByName obtiene una categoría por nombre exacto entre las no eliminadas.
func (r *ItemTypeRepo) GetByName(name string) (*entity.ItemType, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM item_types WHERE name = $1 AND deleted_at IS NULL`
	var it entity.ItemType
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&it.ID, &it.Name, &it.Description, &it.IsActive, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item type by name: %w", err)
	}
	return &it, nil
}

// List lista categorías con búsqueda opcional por nombre, paginada, con total.
func (r *ItemTypeRepo) List(search string, limit, offset int) ([]*entity.ItemType, int, error) {
	ctx := context.Background()
	where := `WHERE deleted_at IS NULL`
	args := []any{}
	if search != "" {
		where += ` AND name ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM item_types `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count item types: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, is_active, created_at, updated_at
		FROM item_types %s ORDER BY name LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list item types: %w", err)
	}
	defer rows.Close()

	var list []*entity.ItemType
	for rows.Next() {
		var it entity.ItemType
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.IsActive, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan item type: %w", err)
		}
		list = append(list, &it)
	}
	return list, total, rows.Err()
}

// ListActive lista las categorías activas sin paginar, ordenadas por nombre.
func (r *ItemTypeRepo) ListActive() ([]*entity.ItemType, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM item_types WHERE deleted_at IS NULL AND is_active ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active item types: %w", err)
	}
	defer rows.Close()

	var list []*entity.ItemType
	for rows.Next() {
		var it entity.ItemType
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.IsActive, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item type: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza nombre, descripción y estado de una categoría.
func (r *ItemTypeRepo) Update(itemType *entity.ItemType) error {
	query := `
		UPDATE item_types SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		itemType.ID, itemType.Name, itemType.Description, itemType.IsActive, itemType.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item type: %w", err)
	}
	return nil
}

// SoftDelete marca la categoría como eliminada.
func (r *ItemTypeRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE item_types SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete item type: %w", err)
	}
	return nil
}

// CountItems cuenta los artículos no eliminados de la categoría.
func (r *ItemTypeRepo) CountItems(itemTypeID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM items WHERE item_type_id = $1 AND deleted_at IS NULL`, itemTypeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count items by type: %w", err)
	}
	return count, nil
}
