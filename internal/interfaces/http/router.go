package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/petshop-api/internal/application/auth"
	"github.com/jcastro/petshop-api/internal/application/catalog"
	"github.com/jcastro/petshop-api/internal/application/customers"
	"github.com/jcastro/petshop-api/internal/application/inventory"
	"github.com/jcastro/petshop-api/internal/application/reports"
	"github.com/jcastro/petshop-api/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	ItemTypeUC *catalog.ItemTypeUseCase
	ItemUC     *catalog.ItemUseCase
	StockInUC  *inventory.StockInUseCase
	InvQueryUC *inventory.QueryUseCase
	SaleUC     *sales.UseCase
	CustomerUC *customers.UseCase
	ReportUC   *reports.UseCase
	Receipt    sales.ReceiptGenerator
	JWTSecret  string

	// Development habilita detalle de errores internos en las respuestas.
	Development bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	SetDevelopment(deps.Development)

	api := app.Group("/api")

	// Auth (login y registro públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/profile", authHandler.Profile)
	protected.Put("/auth/profile", authHandler.UpdateProfile)

	// Categorías de artículos (protegido)
	itemTypes := protected.Group("/item-types")
	itemTypeHandler := NewItemTypeHandler(deps.ItemTypeUC)
	itemTypes.Post("/", itemTypeHandler.Create)
	itemTypes.Get("/", itemTypeHandler.List)
	itemTypes.Get("/active", itemTypeHandler.ListActive)
	itemTypes.Get("/:id", itemTypeHandler.GetByID)
	itemTypes.Put("/:id", itemTypeHandler.Update)
	itemTypes.Delete("/:id", RequireAdmin(), itemTypeHandler.Delete)

	// Artículos (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", RequireAdmin(), itemHandler.Delete)

	// Inventario (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockInUC, deps.InvQueryUC)
	invGroup.Post("/stock-in", inventoryHandler.StockIn)
	invGroup.Get("/stock-in", inventoryHandler.History)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Post("/adjust", RequireAdmin(), inventoryHandler.Adjust)
	invGroup.Put("/min-stock/:itemId", inventoryHandler.UpdateMinStock)
	invGroup.Get("/:itemId", inventoryHandler.GetByItem)

	// Ventas (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Receipt)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Put("/:id/cancel", saleHandler.Cancel)

	// Clientes (protegido)
	customersGroup := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customersGroup.Post("/", customerHandler.Create)
	customersGroup.Get("/", customerHandler.List)
	customersGroup.Get("/:id", customerHandler.GetByID)
	customersGroup.Get("/:id/analytics", customerHandler.Analytics)
	customersGroup.Put("/:id", customerHandler.Update)
	customersGroup.Delete("/:id", RequireAdmin(), customerHandler.Delete)

	// Reportes (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup.Get("/revenue", reportHandler.Revenue)
	reportsGroup.Get("/top-selling", reportHandler.TopSelling)
	reportsGroup.Get("/profitability", reportHandler.Profitability)
	reportsGroup.Get("/inventory-value", reportHandler.InventoryValue)
	reportsGroup.Get("/payment-methods", reportHandler.PaymentMethods)
}
