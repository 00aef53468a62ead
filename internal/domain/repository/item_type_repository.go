package repository

import "github.com/jcastro/petshop-api/internal/domain/entity"

// ItemTypeRepository define el puerto de persistencia para ItemType.
// Todas las lecturas filtran filas con soft delete.
type ItemTypeRepository interface {
	Create(itemType *entity.ItemType) error
	GetByID(id string) (*entity.ItemType, error)
	GetByName(name string) (*entity.ItemType, error)
	List(search string, limit, offset int) ([]*entity.ItemType, int, error)
	ListActive() ([]*entity.ItemType, error)
	Update(itemType *entity.ItemType) error
	SoftDelete(id string) error
	CountItems(itemTypeID string) (int, error)
}
