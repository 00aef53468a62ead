package repository

import "github.com/jcastro/petshop-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	List(search string, activeOnly bool, limit, offset int) ([]*entity.Customer, int, error)
	Update(customer *entity.Customer) error
	SoftDelete(id string) error
}
