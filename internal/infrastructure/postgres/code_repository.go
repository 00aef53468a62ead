package postgres

import (
	"context"
	"fmt"

	"github.com/jcastro/petshop-api/internal/domain/repository"
)

var _ repository.CodeRepository = (*CodeRepo)(nil)

// CodeRepo entrega consecutivos por prefijo desde la tabla code_sequences.
// El upsert incrementa y devuelve en una sola sentencia, así que dos
// transacciones concurrentes nunca reciben el mismo número: la segunda espera
// el lock de fila de la primera.
type CodeRepo struct {
	q Querier
}

// NewCodeRepository construye el adaptador. Pasar la tx de la operación que
// consume el código, no el pool: el consecutivo debe avanzar junto con ella.
func NewCodeRepository(q Querier) *CodeRepo {
	return &CodeRepo{q: q}
}

// Next devuelve el siguiente consecutivo del prefijo.
func (r *CodeRepo) Next(prefix string) (int64, error) {
	query := `
		INSERT INTO code_sequences (prefix, value) VALUES ($1, 1)
		ON CONFLICT (prefix) DO UPDATE SET value = code_sequences.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(context.Background(), query, prefix).Scan(&value); err != nil {
		return 0, fmt.Errorf("next code for %s: %w", prefix, err)
	}
	return value, nil
}
