package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcastro/petshop-api/internal/application/auth"
	"github.com/jcastro/petshop-api/internal/application/catalog"
	"github.com/jcastro/petshop-api/internal/application/customers"
	"github.com/jcastro/petshop-api/internal/application/inventory"
	"github.com/jcastro/petshop-api/internal/application/reports"
	"github.com/jcastro/petshop-api/internal/application/sales"
	infrapdf "github.com/jcastro/petshop-api/internal/infrastructure/pdf"
	"github.com/jcastro/petshop-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastro/petshop-api/internal/interfaces/http"
	"github.com/jcastro/petshop-api/pkg/config"
	"github.com/jcastro/petshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
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

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemTypeUC := catalog.NewItemTypeUseCase(itemTypeRepo)
	itemUC := catalog.NewItemUseCase(txRunner, itemRepo, itemTypeRepo, invRepo, saleRepo)
	stockInUC := inventory.NewStockInUseCase(txRunner)
	invQueryUC := inventory.NewQueryUseCase(txRunner, invRepo, itemRepo, stockInRepo)
	saleUC := sales.NewUseCase(txRunner, saleRepo, customerRepo)
	customerUC := customers.NewUseCase(txRunner, customerRepo, saleRepo, reportRepo)
	reportUC := reports.NewUseCase(reportRepo, invRepo)

	// PDF: recibo de venta para impresión o envío al cliente
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PetShop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ItemTypeUC:  itemTypeUC,
		ItemUC:      itemUC,
		StockInUC:   stockInUC,
		InvQueryUC:  invQueryUC,
		SaleUC:      saleUC,
		CustomerUC:  customerUC,
		ReportUC:    reportUC,
		Receipt:     receiptGen,
		JWTSecret:   cfg.JWT.Secret,
		Development: cfg.App.Development(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
