package inventory_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/application/inventory"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
)

// TestStockIn_RecepcionCompleta verifica el flujo feliz: cabecera con total
// calculado, una línea por artículo y el inventario actualizado con promedio
// ponderado.
func TestStockIn_RecepcionCompleta(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Croquetas adulto")
	seedItem(store, "item-2", "Arena para gato")
	seedInventory(store, "item-1", 10, "100")
	uc := inventory.NewStockInUseCase(&memTxRunner{store: store})

	resp, err := uc.Create(context.Background(), "user-1", dto.StockInRequest{
		Details: []dto.StockInLineRequest{
			{ItemID: "item-1", Quantity: 5, CostPrice: decimal.NewFromInt(130)},
			{ItemID: "item-2", Quantity: 3, CostPrice: decimal.NewFromInt(40)},
		},
		Notes: "pedido proveedor norte",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Code, "SI-"), "El código debe llevar el prefijo de recepciones")
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(770)),
		"Total = 5×130 + 3×40 = 770")
	assert.Equal(t, entity.StockInStatusCompleted, resp.Status)
	require.Len(t, resp.Details, 2)

	// item-1 tenía 10 a 100; entran 5 a 130: queda 15 con promedio 110.
	inv1 := store.inventory["item-1"]
	assert.Equal(t, 15, inv1.Quantity)
	assert.True(t, inv1.AvgCost.Equal(decimal.NewFromInt(110)))

	// item-2 no tenía fila: se crea con el costo de entrada como promedio.
	inv2 := store.inventory["item-2"]
	require.NotNil(t, inv2)
	assert.Equal(t, 3, inv2.Quantity)
	assert.True(t, inv2.AvgCost.Equal(decimal.NewFromInt(40)))
}

// TestStockIn_ValidacionDeLineas verifica los rechazos antes de abrir la
// transacción: sin líneas, cantidad menor a 1 y costo no positivo.
func TestStockIn_ValidacionDeLineas(t *testing.T) {
	store := newMemStore()
	uc := inventory.NewStockInUseCase(&memTxRunner{store: store})
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", dto.StockInRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "Sin líneas debe rechazarse")

	_, err = uc.Create(ctx, "user-1", dto.StockInRequest{
		Details: []dto.StockInLineRequest{{ItemID: "item-1", Quantity: 0, CostPrice: decimal.NewFromInt(10)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "Cantidad 0 debe rechazarse")

	_, err = uc.Create(ctx, "user-1", dto.StockInRequest{
		Details: []dto.StockInLineRequest{{ItemID: "item-1", Quantity: 1, CostPrice: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "Costo 0 debe rechazarse")
}

// TestStockIn_ArticuloInexistenteRevierteTodo verifica la atomicidad: si la
// segunda línea referencia un artículo inexistente, la primera línea ya
// aplicada se revierte y el inventario queda como antes.
func TestStockIn_ArticuloInexistenteRevierteTodo(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Croquetas adulto")
	seedInventory(store, "item-1", 10, "100")
	uc := inventory.NewStockInUseCase(&memTxRunner{store: store})

	_, err := uc.Create(context.Background(), "user-1", dto.StockInRequest{
		Details: []dto.StockInLineRequest{
			{ItemID: "item-1", Quantity: 5, CostPrice: decimal.NewFromInt(130)},
			{ItemID: "no-existe", Quantity: 1, CostPrice: decimal.NewFromInt(10)},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	inv := store.inventory["item-1"]
	assert.Equal(t, 10, inv.Quantity, "La recepción fallida no debe dejar cantidades a medias")
	assert.True(t, inv.AvgCost.Equal(decimal.NewFromInt(100)),
		"La recepción fallida no debe dejar el costo promedio recalculado")
	assert.Empty(t, store.stockIns, "No debe quedar cabecera huérfana")
}

// ── helper ────────────────────────────────────────────────────────────────────

func seedItem(store *memStore, id, name string) {
	store.items[id] = &entity.Item{
		ID:       id,
		Code:     "IT-20260101-000001-00",
		Name:     name,
		Unit:     "pcs",
		IsActive: true,
	}
}

func TestStockIn_RecepcionRetroactivaCodificaFechaDeRegistro(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Croquetas adulto")
	uc := inventory.NewStockInUseCase(&memTxRunner{store: store})

	backdated := time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local)
	resp, err := uc.Create(context.Background(), "user-1", dto.StockInRequest{
		ImportDate: &backdated,
		Details: []dto.StockInLineRequest{
			{ItemID: "item-1", Quantity: 5, CostPrice: decimal.NewFromInt(130)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.ImportDate.Equal(backdated), "la fecha de recepción sí es la retroactiva")
	assert.Contains(t, resp.Code, "SI-"+time.Now().Format("20060102"),
		"el código lleva la fecha de registro para ordenar con el consecutivo")
	assert.NotContains(t, resp.Code, "20250101")
}
