package repository

import (
	"time"

	"github.com/jcastro/petshop-api/internal/domain/entity"
)

// StockInDetailRow línea de recepción con el resumen del artículo (para respuestas).
type StockInDetailRow struct {
	Detail   entity.StockInDetail
	ItemName string
	Unit     string
}

// StockInFilter parámetros del historial de recepciones.
type StockInFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Limit    int
	Offset   int
}

// StockInRepository define el puerto de persistencia para recepciones de mercancía.
type StockInRepository interface {
	Create(stockIn *entity.StockIn) error
	CreateDetail(detail *entity.StockInDetail) error
	GetByID(id string) (*entity.StockIn, error)
	ListDetails(stockInID string) ([]StockInDetailRow, error)
	List(filter StockInFilter) ([]*entity.StockIn, int, error)
}
