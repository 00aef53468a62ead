package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcastro/petshop-api/internal/application/catalog"
	"github.com/jcastro/petshop-api/internal/application/customers"
	"github.com/jcastro/petshop-api/internal/application/inventory"
	"github.com/jcastro/petshop-api/internal/application/sales"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// Ensure TxRunner satisface los puertos de cada caso de uso.
var (
	_ inventory.TxRunner = (*TxRunner)(nil)
	_ sales.TxRunner     = (*TxRunner)(nil)
	_ catalog.TxRunner   = (*TxRunner)(nil)
	_ customers.TxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repositorios atados a la tx y
// hace Commit; cualquier error de fn provoca Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := repository.Tx{
		Items:     NewItemRepository(tx),
		ItemTypes: NewItemTypeRepository(tx),
		Inventory: NewInventoryRepository(tx),
		StockIns:  NewStockInRepository(tx),
		Sales:     NewSaleRepository(tx),
		Customers: NewCustomerRepository(tx),
		Codes:     NewCodeRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
