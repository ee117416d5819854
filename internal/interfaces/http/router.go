package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jpacevedo/inventario-pro/internal/application/analytics"
	"github.com/jpacevedo/inventario-pro/internal/application/auth"
	"github.com/jpacevedo/inventario-pro/internal/application/catalog"
	"github.com/jpacevedo/inventario-pro/internal/application/inventory"
	"github.com/jpacevedo/inventario-pro/internal/domain/entity"
	"github.com/jpacevedo/inventario-pro/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	DashboardUC      *analytics.DashboardUseCase
	CatalogUC        *catalog.CatalogUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	BulkImport       *inventory.BulkImportUseCase
	StatusReport     *pdf.StatusReportGenerator
	AppName          string
	JWTSecret        string
	ImportCharset    string
	ImportMaxFileMB  int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/perfil", authHandler.Profile)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.StatusReport, deps.AppName)
	dashboard.Get("/resumen", dashboardHandler.GetSummary)
	dashboard.Get("/detalle", dashboardHandler.GetDetail)
	dashboard.Get("/report.pdf", dashboardHandler.GetReportPDF)

	// Movimientos e importación (protegido; la carga masiva solo para admin y bodeguero)
	inv := protected.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.BulkImport, deps.ImportCharset, deps.ImportMaxFileMB)
	inv.Post("/movimientos", inventoryHandler.RegisterMovement)
	inv.Post("/importar", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.ImportMovements)

	// Catálogo (protegido; edición solo admin)
	cat := protected.Group("/catalogo")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	cat.Get("/productos", catalogHandler.ListProducts)
	cat.Get("/categorias", catalogHandler.ListCategories)
	cat.Post("/productos", RequireRole(entity.RoleAdmin), catalogHandler.SaveProduct)
}
