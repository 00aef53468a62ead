package inventory

import (
	"context"

	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las recepciones
// de mercancía (todas las líneas o ninguna) y el lock de fila de los ajustes.
type TxRunner interface {
	Run(ctx context.Context, fn func(r repository.Tx) error) error
}
