package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gestion-erp/internal/application/inventory"
	"github.com/jhoicas/gestion-erp/internal/application/usecase"
	infrapdf "github.com/jhoicas/gestion-erp/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-erp/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion-erp/internal/interfaces/http"
	"github.com/jhoicas/gestion-erp/pkg/config"
	"github.com/jhoicas/gestion-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	companyRepo := postgres.NewCompanyRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo, companyRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, departmentRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo)

	reportGen := infrapdf.NewMarotoReportGenerator()
	inventoryUC := inventory.NewInventoryUseCase(txRunner, inventoryRepo, productRepo, reportGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:    companyUC,
		DepartmentUC: departmentUC,
		EmployeeUC:   employeeUC,
		SettingsUC:   settingsUC,
		CategoryUC:   categoryUC,
		SupplierUC:   supplierUC,
		ProductUC:    productUC,
		MovementUC:   movementUC,
		InventoryUC:  inventoryUC,
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
