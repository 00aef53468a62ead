package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/petshop-api/internal/application/inventory"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
)

// TestApplyReceipt_PrimeraRecepcionCreaFila verifica que recibir mercancía de
// un artículo sin fila de inventario crea la fila con el costo de entrada como
// promedio inicial.
func TestApplyReceipt_PrimeraRecepcionCreaFila(t *testing.T) {
	store := newMemStore()
	repo := &memInventoryRepo{store: store}

	inv, err := inventory.ApplyReceipt(repo, "item-1", 10, decimal.NewFromInt(100), time.Now())

	require.NoError(t, err)
	assert.Equal(t, 10, inv.Quantity)
	require.NotNil(t, inv.AvgCost)
	assert.True(t, inv.AvgCost.Equal(decimal.NewFromInt(100)),
		"El promedio inicial debe ser el costo de la primera recepción")
}

// TestApplyReceipt_RecalculaCostoPromedio verifica el promedio ponderado con
// el vector canónico: 10 unidades a 100 más 5 unidades a 130 dan promedio 110.
func TestApplyReceipt_RecalculaCostoPromedio(t *testing.T) {
	store := newMemStore()
	repo := &memInventoryRepo{store: store}
	now := time.Now()

	_, err := inventory.ApplyReceipt(repo, "item-1", 10, decimal.NewFromInt(100), now)
	require.NoError(t, err)

	inv, err := inventory.ApplyReceipt(repo, "item-1", 5, decimal.NewFromInt(130), now)

	require.NoError(t, err)
	assert.Equal(t, 15, inv.Quantity)
	assert.True(t, inv.AvgCost.Equal(decimal.NewFromInt(110)),
		"(10×100 + 5×130) / 15 = 110")
}

// TestApplyDelta_DescuentaSinTocarCosto verifica que una salida solo reduce la
// cantidad y deja intacto el costo promedio.
func TestApplyDelta_DescuentaSinTocarCosto(t *testing.T) {
	store := newMemStore()
	repo := &memInventoryRepo{store: store}
	now := time.Now()
	seedInventory(store, "item-1", 15, "110")

	inv, err := inventory.ApplyDelta(repo, "item-1", -4, now)

	require.NoError(t, err)
	assert.Equal(t, 11, inv.Quantity)
	assert.True(t, inv.AvgCost.Equal(decimal.RequireFromString("110")),
		"Las salidas no deben recalcular el costo promedio")
}

// TestApplyDelta_RestauracionSuma verifica que un delta positivo (devolución
// por cancelación) repone unidades sin tocar el costo.
func TestApplyDelta_RestauracionSuma(t *testing.T) {
	store := newMemStore()
	repo := &memInventoryRepo{store: store}
	seedInventory(store, "item-1", 11, "110")

	inv, err := inventory.ApplyDelta(repo, "item-1", 4, time.Now())

	require.NoError(t, err)
	assert.Equal(t, 15, inv.Quantity)
}

// TestApplyDelta_StockInsuficiente verifica que un descuento mayor al
// disponible se rechaza y la cantidad queda como estaba.
func TestApplyDelta_StockInsuficiente(t *testing.T) {
	store := newMemStore()
	repo := &memInventoryRepo{store: store}
	seedInventory(store, "item-1", 5, "50")

	_, err := inventory.ApplyDelta(repo, "item-1", -8, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, store.inventory["item-1"].Quantity,
		"La cantidad no debe cambiar cuando el descuento se rechaza")
}

// TestApplyDelta_SinFilaDeInventario verifica que descontar de un artículo sin
// fila de inventario retorna not found.
func TestApplyDelta_SinFilaDeInventario(t *testing.T) {
	store := newMemStore()
	repo := &memInventoryRepo{store: store}

	_, err := inventory.ApplyDelta(repo, "fantasma", -1, time.Now())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── helper ────────────────────────────────────────────────────────────────────

func seedInventory(store *memStore, itemID string, qty int, avgCost string) {
	cost := decimal.RequireFromString(avgCost)
	store.inventory[itemID] = &entity.Inventory{
		ID:       "inv-" + itemID,
		ItemID:   itemID,
		Quantity: qty,
		AvgCost:  &cost,
	}
}
