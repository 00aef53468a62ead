// seed carga datos de demostración: usuario admin, categorías, artículos con
// stock inicial y algunos clientes. Usa los mismos casos de uso que la API,
// así que los códigos, la normalización de nombres y el costo promedio quedan
// igual que en una carga real.
//
// Uso: go run ./cmd/seed
// Idempotencia básica: si el usuario admin ya existe, el seeder asume que la
// base ya fue poblada y termina sin tocar nada.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jcastro/petshop-api/internal/application/auth"
	"github.com/jcastro/petshop-api/internal/application/catalog"
	"github.com/jcastro/petshop-api/internal/application/customers"
	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/application/inventory"
	"github.com/jcastro/petshop-api/internal/infrastructure/postgres"
	"github.com/jcastro/petshop-api/pkg/config"
)

const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

type seedItem struct {
	name     string
	itemType string
	price    string
	unit     string
	quantity int
	cost     string
	minStock int
}

var seedItemTypes = []dto.CreateItemTypeRequest{
	{Name: "Alimento para perros", Description: "Croquetas y latas"},
	{Name: "Alimento para gatos", Description: "Croquetas, latas y sobres"},
	{Name: "Accesorios", Description: "Correas, collares, juguetes"},
	{Name: "Higiene", Description: "Shampoo, arena, bolsas"},
}

var seedItems = []seedItem{
	{"Croquetas adulto 20kg", "Alimento para perros", "850.00", "bolsa", 15, "620.00", 5},
	{"Lata de carne 400g", "Alimento para perros", "45.00", "lata", 60, "28.50", 20},
	{"Croquetas gato 10kg", "Alimento para gatos", "520.00", "bolsa", 12, "390.00", 4},
	{"Sobres de atún 85g", "Alimento para gatos", "18.00", "sobre", 100, "11.00", 30},
	{"Correa retráctil 5m", "Accesorios", "260.00", "pieza", 8, "140.00", 3},
	{"Pelota de hule", "Accesorios", "55.00", "pieza", 25, "22.00", 10},
	{"Shampoo antipulgas 500ml", "Higiene", "120.00", "botella", 18, "68.00", 6},
	{"Arena para gato 10kg", "Higiene", "180.00", "bolsa", 20, "115.00", 8},
}

var seedCustomers = []dto.CreateCustomerRequest{
	{Name: "María González", Phone: "5551001001", Email: "maria@example.com"},
	{Name: "José Ramírez", Phone: "5551001002"},
	{Name: "Lucía Fernández", Phone: "5551001003", Notes: "Prefiere entregas sábados"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemTypeRepo := postgres.NewItemTypeRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	stockInRepo := postgres.NewStockInRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer})
	itemTypeUC := catalog.NewItemTypeUseCase(itemTypeRepo)
	itemUC := catalog.NewItemUseCase(txRunner, itemRepo, itemTypeRepo, invRepo, saleRepo)
	stockInUC := inventory.NewStockInUseCase(txRunner)
	invQueryUC := inventory.NewQueryUseCase(txRunner, invRepo, itemRepo, stockInRepo)
	customerUC := customers.NewUseCase(txRunner, customerRepo, saleRepo, reportRepo)

	if existing, err := userRepo.GetByUsername(adminUsername); err != nil {
		fatal("consultar usuario admin", err)
	} else if existing != nil {
		fmt.Println("la base ya contiene datos de demostración, nada que hacer")
		return
	}

	admin, err := authUC.Register(dto.RegisterRequest{
		Username: adminUsername,
		Password: adminPassword,
		FullName: "Administrador",
		Role:     "admin",
	})
	if err != nil {
		fatal("crear usuario admin", err)
	}
	fmt.Printf("usuario admin creado (%s / %s)\n", adminUsername, adminPassword)

	typeIDs := make(map[string]string, len(seedItemTypes))
	for _, req := range seedItemTypes {
		resp, err := itemTypeUC.Create(req)
		if err != nil {
			fatal("crear categoría "+req.Name, err)
		}
		typeIDs[resp.Name] = resp.ID
	}
	fmt.Printf("%d categorías creadas\n", len(seedItemTypes))

	var stockLines []dto.StockInLineRequest
	for _, it := range seedItems {
		resp, err := itemUC.Create(ctx, dto.CreateItemRequest{
			Name:         it.name,
			ItemTypeID:   typeIDs[it.itemType],
			SellingPrice: decimal.RequireFromString(it.price),
			Unit:         it.unit,
		})
		if err != nil {
			fatal("crear artículo "+it.name, err)
		}
		if err := invQueryUC.UpdateMinStock(resp.ID, dto.UpdateMinStockRequest{MinStock: it.minStock}); err != nil {
			fatal("fijar stock mínimo de "+it.name, err)
		}
		stockLines = append(stockLines, dto.StockInLineRequest{
			ItemID:    resp.ID,
			Quantity:  it.quantity,
			CostPrice: decimal.RequireFromString(it.cost),
		})
	}
	fmt.Printf("%d artículos creados\n", len(seedItems))

	stockIn, err := stockInUC.Create(ctx, admin.ID, dto.StockInRequest{
		Details: stockLines,
		Notes:   "Carga inicial de demostración",
	})
	if err != nil {
		fatal("registrar recepción inicial", err)
	}
	fmt.Printf("recepción %s registrada (%d líneas)\n", stockIn.Code, len(stockLines))

	for _, req := range seedCustomers {
		if _, err := customerUC.Create(ctx, req); err != nil {
			fatal("crear cliente "+req.Name, err)
		}
	}
	fmt.Printf("%d clientes creados\n", len(seedCustomers))
}

func fatal(op string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", op, err)
	os.Exit(1)
}
