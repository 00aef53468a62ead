package repository

import "github.com/jcastro/petshop-api/internal/domain/entity"

// ItemFilter parámetros de listado/búsqueda de artículos.
type ItemFilter struct {
	Search     string // por nombre o código, sin distinguir acentos
	ItemTypeID string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByName(name string) (*entity.Item, error)
	List(filter ItemFilter) ([]*entity.Item, int, error)
	Update(item *entity.Item) error
	SoftDelete(id string) error
}
