package sales_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/application/sales"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
)

func newSalesUseCase(store *memStore) *sales.UseCase {
	return sales.NewUseCase(
		&memTxRunner{store: store},
		&memSaleRepo{store: store},
		&memCustomerRepo{store: store},
	)
}

// TestCreateSale_DescuentaInventarioYCongelaCosto verifica el flujo feliz:
// 15 unidades en stock a costo promedio 50, se venden 4 a 200 con descuento
// 50. Quedan 11 unidades, total 800, final 750, y la línea congela el costo 50
// con utilidad (200−50)×4 = 600.
func TestCreateSale_DescuentaInventarioYCongelaCosto(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Correa mediana")
	seedInventory(store, "item-1", 15, "50")
	uc := newSalesUseCase(store)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		Details: []dto.SaleLineRequest{
			{ItemID: "item-1", Quantity: 4, UnitPrice: decimal.NewFromInt(200)},
		},
		Discount: decimal.NewFromInt(50),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Code, "SA-"), "El código debe llevar el prefijo de ventas")
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(800)), "Total = 4×200")
	assert.True(t, resp.FinalAmount.Equal(decimal.NewFromInt(750)), "Final = 800 − 50")
	assert.Equal(t, entity.SaleStatusCompleted, resp.Status)
	assert.Equal(t, entity.PaymentCash, resp.PaymentMethod, "Sin método explícito la venta es de contado")

	require.Len(t, resp.Details, 1)
	line := resp.Details[0]
	assert.True(t, line.CostPrice.Equal(decimal.NewFromInt(50)),
		"La línea debe congelar el costo promedio vigente")
	assert.True(t, line.Profit.Equal(decimal.NewFromInt(600)), "Utilidad = (200−50)×4")

	inv := store.inventory["item-1"]
	assert.Equal(t, 11, inv.Quantity)
	assert.True(t, inv.AvgCost.Equal(decimal.NewFromInt(50)),
		"La venta no debe recalcular el costo promedio")
}

// TestCreateSale_StockInsuficienteRechazaTodo verifica que si una línea no
// tiene stock suficiente, la venta completa se rechaza y ningún inventario
// queda modificado, incluidas las líneas que sí tenían stock.
func TestCreateSale_StockInsuficienteRechazaTodo(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Correa mediana")
	seedItem(store, "item-2", "Shampoo antipulgas")
	seedInventory(store, "item-1", 20, "50")
	seedInventory(store, "item-2", 2, "30")
	uc := newSalesUseCase(store)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		Details: []dto.SaleLineRequest{
			{ItemID: "item-1", Quantity: 5, UnitPrice: decimal.NewFromInt(100)},
			{ItemID: "item-2", Quantity: 3, UnitPrice: decimal.NewFromInt(80)},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 20, store.inventory["item-1"].Quantity,
		"La línea con stock suficiente tampoco debe descontarse")
	assert.Equal(t, 2, store.inventory["item-2"].Quantity)
	assert.Empty(t, store.sales, "No debe quedar cabecera de venta")
}

// TestCreateSale_ArticuloRepetidoValidaAcumulado verifica que el mismo
// artículo en dos líneas se valida contra el stock acumulado: 5 + 6 unidades
// contra 10 disponibles debe rechazarse aunque cada línea quepa por separado.
func TestCreateSale_ArticuloRepetidoValidaAcumulado(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Correa mediana")
	seedInventory(store, "item-1", 10, "50")
	uc := newSalesUseCase(store)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		Details: []dto.SaleLineRequest{
			{ItemID: "item-1", Quantity: 5, UnitPrice: decimal.NewFromInt(100)},
			{ItemID: "item-1", Quantity: 6, UnitPrice: decimal.NewFromInt(100)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, store.inventory["item-1"].Quantity)
}

// TestCreateSale_DescuentoMayorQueTotal verifica que el final se recorta a
// cero cuando el descuento supera el total, nunca queda negativo.
func TestCreateSale_DescuentoMayorQueTotal(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Juguete mordedor")
	seedInventory(store, "item-1", 5, "10")
	uc := newSalesUseCase(store)

	resp, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		Details: []dto.SaleLineRequest{
			{ItemID: "item-1", Quantity: 1, UnitPrice: decimal.NewFromInt(30)},
		},
		Discount: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.True(t, resp.FinalAmount.Equal(decimal.Zero), "El monto final nunca es negativo")
}

// TestCreateSale_ClienteInexistente verifica que una venta a un cliente que no
// existe se rechaza sin tocar inventario.
func TestCreateSale_ClienteInexistente(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Correa mediana")
	seedInventory(store, "item-1", 5, "50")
	uc := newSalesUseCase(store)

	_, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		CustomerID: "no-existe",
		Details: []dto.SaleLineRequest{
			{ItemID: "item-1", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 5, store.inventory["item-1"].Quantity)
}

// TestCreateSale_Validaciones verifica los rechazos previos a la transacción.
func TestCreateSale_Validaciones(t *testing.T) {
	store := newMemStore()
	uc := newSalesUseCase(store)
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "Sin líneas debe rechazarse")

	_, err = uc.Create(ctx, "user-1", dto.CreateSaleRequest{
		Details: []dto.SaleLineRequest{{ItemID: "item-1", Quantity: 0, UnitPrice: decimal.NewFromInt(10)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "Cantidad 0 debe rechazarse")

	_, err = uc.Create(ctx, "user-1", dto.CreateSaleRequest{
		Details: []dto.SaleLineRequest{{ItemID: "item-1", Quantity: 1, UnitPrice: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "Precio 0 debe rechazarse")

	_, err = uc.Create(ctx, "user-1", dto.CreateSaleRequest{
		Details:  []dto.SaleLineRequest{{ItemID: "item-1", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}},
		Discount: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "Descuento negativo debe rechazarse")

	_, err = uc.Create(ctx, "user-1", dto.CreateSaleRequest{
		Details:       []dto.SaleLineRequest{{ItemID: "item-1", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}},
		PaymentMethod: "trueque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "Método de pago desconocido debe rechazarse")
}

func TestCreateSale_VentaRetroactivaCodificaFechaDeRegistro(t *testing.T) {
	store := newMemStore()
	seedItem(store, "item-1", "Croquetas adulto 20kg")
	seedInventory(store, "item-1", 15, "110")
	uc := newSalesUseCase(store)

	backdated := time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local)
	resp, err := uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		SaleDate: &backdated,
		Details:  []dto.SaleLineRequest{{ItemID: "item-1", Quantity: 1, UnitPrice: decimal.NewFromInt(200)}},
	})
	require.NoError(t, err)

	assert.True(t, resp.SaleDate.Equal(backdated), "la fecha de la venta sí es la retroactiva")
	assert.Contains(t, resp.Code, "SA-"+time.Now().Format("20060102"),
		"el código lleva la fecha de registro para ordenar con el consecutivo")
	assert.NotContains(t, resp.Code, "20250101")
}
