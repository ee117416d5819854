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

	"github.com/jpacevedo/inventario-pro/internal/application/analytics"
	"github.com/jpacevedo/inventario-pro/internal/application/auth"
	"github.com/jpacevedo/inventario-pro/internal/application/catalog"
	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
	infrapdf "github.com/jpacevedo/inventario-pro/internal/infrastructure/pdf"
	"github.com/jpacevedo/inventario-pro/internal/infrastructure/postgres"
	httpRouter "github.com/jpacevedo/inventario-pro/internal/interfaces/http"
	"github.com/jpacevedo/inventario-pro/pkg/config"
	"github.com/jpacevedo/inventario-pro/pkg/logger"
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
	movementRepo := postgres.NewMovementRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	sessionRunner := postgres.NewSessionRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	registerMovementUC := inventory.NewRegisterMovementUseCase(movementRepo)
	bulkImportUC := inventory.NewBulkImportUseCase(sessionRunner, log.Component("bulk_import").Zerolog())
	catalogUC := catalog.NewCatalogUseCase(catalogRepo)
	dashboardUC := analytics.NewDashboardUseCase(statusRepo)
	statusReport := infrapdf.NewStatusReportGenerator()

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
		Title:    "InventarioPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		DashboardUC:      dashboardUC,
		CatalogUC:        catalogUC,
		RegisterMovement: registerMovementUC,
		BulkImport:       bulkImportUC,
		StatusReport:     statusReport,
		AppName:          cfg.App.Name,
		JWTSecret:        cfg.JWT.Secret,
		ImportCharset:    cfg.Import.Charset,
		ImportMaxFileMB:  cfg.Import.MaxFileMB,
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
