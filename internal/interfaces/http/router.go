package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lager-api/internal/application/auth"
	"github.com/jhoicas/lager-api/internal/application/inventory"
	"github.com/jhoicas/lager-api/internal/application/report"
	"github.com/jhoicas/lager-api/internal/application/usecase"
	"github.com/jhoicas/lager-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CredentialUC *auth.CredentialUseCase
	CategoryUC   *usecase.CategoryUseCase
	InventoryUC  *inventory.InventoryUseCase
	ReportUC     *report.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/init-defaults", authHandler.InitDefaults)

	// Rutas protegidas: Bearer Token + sesión activa
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireActiveSession(deps.AuthUC))
	adminOnly := RequireRole(string(entity.RoleAdmin))

	protected.Get("/auth/session", authHandler.Session)
	protected.Post("/auth/logout", authHandler.Logout)

	// Inventory (cualquier rol)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/summary", inventoryHandler.Summary)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Get("/by-category", inventoryHandler.ByCategory)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Delete("/:id", inventoryHandler.Delete)

	// Reports (cualquier rol)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/inventory", reportHandler.Inventory)

	// Categories: lectura para todos, mutaciones solo admin
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Passwords (solo admin)
	passwords := protected.Group("/passwords", adminOnly)
	credentialHandler := NewCredentialHandler(deps.CredentialUC)
	passwords.Get("/", credentialHandler.List)
	passwords.Post("/", credentialHandler.Create)
	passwords.Put("/:password", credentialHandler.ChangeRole)
	passwords.Delete("/:password", credentialHandler.Delete)
}
