package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/application/inventory"
	"github.com/jcastro/petshop-api/internal/domain"
)

func newQueryUseCase(store *memStore) *inventory.QueryUseCase {
	return inventory.NewQueryUseCase(
		&memTxRunner{store: store},
		&memInventoryRepo{store: store},
		&memItemRepo{store: store},
		&memStockInRepo{store: store},
	)
}

func TestAdjust_SobrescribeCantidadSinTocarCosto(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Arena para gato 10kg")
	seedInventory(store, "item-1", 20, "115.00")
	uc := newQueryUseCase(store)

	resp, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ItemID:      "item-1",
		NewQuantity: 17,
		Reason:      "conteo físico: tres bolsas rotas",
	})
	require.NoError(t, err)

	assert.Equal(t, "Arena para gato 10kg", resp.ItemName)
	assert.Equal(t, 20, resp.OldQuantity)
	assert.Equal(t, 17, resp.NewQuantity)
	assert.Equal(t, -3, resp.Difference)

	inv := store.inventory["item-1"]
	assert.Equal(t, 17, inv.Quantity, "la cantidad debe quedar sobrescrita")
	require.NotNil(t, inv.AvgCost)
	assert.True(t, inv.AvgCost.Equal(decimal.RequireFromString("115.00")),
		"el ajuste no aporta información de costo, el promedio se conserva")
}

func TestAdjust_MotivoObligatorio(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Arena para gato 10kg")
	seedInventory(store, "item-1", 20, "115.00")
	uc := newQueryUseCase(store)

	_, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ItemID:      "item-1",
		NewQuantity: 17,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 20, store.inventory["item-1"].Quantity, "sin motivo no se toca el inventario")
}

func TestAdjust_CantidadNegativa(t *testing.T) {
	uc := newQueryUseCase(newMemStore())

	_, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ItemID:      "item-1",
		NewQuantity: -5,
		Reason:      "error de captura",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_ArticuloSinInventario(t *testing.T) {
	uc := newQueryUseCase(newMemStore())

	_, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ItemID:      "no-existe",
		NewQuantity: 5,
		Reason:      "conteo físico",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
