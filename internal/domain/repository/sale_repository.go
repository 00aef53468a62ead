package repository

import (
	"time"

	"github.com/jcastro/petshop-api/internal/domain/entity"
)

// SaleDetailRow línea de venta con el resumen del artículo (para respuestas).
type SaleDetailRow struct {
	Detail   entity.SaleDetail
	ItemName string
	Unit     string
}

// SaleFilter parámetros de listado de ventas.
type SaleFilter struct {
	CustomerID    string
	PaymentMethod string
	Status        string
	FromDate      *time.Time
	ToDate        *time.Time
	Limit         int
	Offset        int
}

// SaleRepository define el puerto de persistencia para ventas.
// GetForUpdate bloquea la cabecera para la cancelación (evita doble reembolso concurrente).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id string) (*entity.Sale, error)
	GetForUpdate(id string) (*entity.Sale, error)
	ListDetails(saleID string) ([]SaleDetailRow, error)
	List(filter SaleFilter) ([]*entity.Sale, int, error)
	UpdateStatusAndNotes(id, status, notes string) error
	CountByCustomer(customerID string) (int, error)
	CountByItem(itemID string) (int, error)
}
