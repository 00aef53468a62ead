package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
)

// TestCancelSale_RestauraInventario verifica el ciclo completo: vender 4 de 15
// deja 11, cancelar la venta repone las 4 y marca la venta como reembolsada
// conservando las notas originales.
func TestCancelSale_RestauraInventario(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Correa mediana")
	seedInventory(store, "item-1", 15, "50")
	uc := newSalesUseCase(store)
	ctx := context.Background()

	sale, err := uc.Create(ctx, "user-1", dto.CreateSaleRequest{
		Details: []dto.SaleLineRequest{
			{ItemID: "item-1", Quantity: 4, UnitPrice: decimal.NewFromInt(200)},
		},
		Notes: "entrega a domicilio",
	})
	require.NoError(t, err)
	require.Equal(t, 11, store.inventory["item-1"].Quantity)

	result, err := uc.Cancel(ctx, sale.ID, "cliente devolvió el producto")

	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusRefunded, result.Status)
	assert.Contains(t, result.Notes, "entrega a domicilio",
		"Las notas originales deben conservarse")
	assert.Contains(t, result.Notes, "[REFUNDED] cliente devolvió el producto")

	inv := store.inventory["item-1"]
	assert.Equal(t, 15, inv.Quantity, "La cancelación debe reponer las unidades vendidas")
	assert.True(t, inv.AvgCost.Equal(decimal.NewFromInt(50)),
		"La devolución no debe recalcular el costo promedio")
}

// TestCancelSale_DobleCancelacion verifica que cancelar dos veces la misma
// venta falla la segunda vez y el inventario no se repone doble.
func TestCancelSale_DobleCancelacion(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Correa mediana")
	seedInventory(store, "item-1", 15, "50")
	uc := newSalesUseCase(store)
	ctx := context.Background()

	sale, err := uc.Create(ctx, "user-1", dto.CreateSaleRequest{
		Details: []dto.SaleLineRequest{
			{ItemID: "item-1", Quantity: 4, UnitPrice: decimal.NewFromInt(200)},
		},
	})
	require.NoError(t, err)

	_, err = uc.Cancel(ctx, sale.ID, "")
	require.NoError(t, err)

	_, err = uc.Cancel(ctx, sale.ID, "")

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	assert.Equal(t, 15, store.inventory["item-1"].Quantity,
		"La segunda cancelación no debe reponer stock de nuevo")
}

// TestCancelSale_VentaInexistente verifica el not found al cancelar un id desconocido.
func TestCancelSale_VentaInexistente(t *testing.T) {
	store := newMemStore()
	uc := newSalesUseCase(store)

	_, err := uc.Cancel(context.Background(), "no-existe", "")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestCancelSale_SinMotivoDejaSoloLaMarca verifica que cancelar sin motivo
// anexa únicamente la marca de reembolso.
func TestCancelSale_SinMotivoDejaSoloLaMarca(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Correa mediana")
	seedInventory(store, "item-1", 5, "50")
	uc := newSalesUseCase(store)
	ctx := context.Background()

	sale, err := uc.Create(ctx, "user-1", dto.CreateSaleRequest{
		Details: []dto.SaleLineRequest{
			{ItemID: "item-1", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)

	result, err := uc.Cancel(ctx, sale.ID, "")

	require.NoError(t, err)
	assert.Equal(t, "[REFUNDED]", result.Notes)
}
