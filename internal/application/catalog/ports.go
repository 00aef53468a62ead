package catalog

import (
	"context"

	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos.
type TxRunner interface {
	Run(ctx context.Context, fn func(r repository.Tx) error) error
}
