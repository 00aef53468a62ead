package sales

import (
	"context"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La venta (cabecera + líneas + descuento de
// inventario) y la cancelación (restauración + cambio de estado) se confirman
// o revierten en bloque.
type TxRunner interface {
	Run(ctx context.Context, fn func(r repository.Tx) error) error
}

// ReceiptGenerator genera el comprobante de una venta (PDF) para imprimir o
// enviar al cliente.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *dto.SaleResponse) ([]byte, error)
}
