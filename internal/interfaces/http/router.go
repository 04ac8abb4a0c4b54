package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wattscycling/warehouse-api/internal/application/auth"
	"github.com/wattscycling/warehouse-api/internal/application/ledger"
	"github.com/wattscycling/warehouse-api/internal/application/usecase"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MovementEngine *ledger.UseCase
	History        *ledger.HistoryUseCase
	StockQuery     *ledger.StockQueryUseCase
	ProductUC      *usecase.ProductUseCase
	VariantUC      *usecase.VariantUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	AttributeUC    *usecase.AttributeUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Movements (protegido): registro e histórico
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementEngine, deps.History)
	movements.Post("/", RequireRole(entity.RoleAdmin, entity.RoleOperario), movementHandler.Apply)
	movements.Get("/", movementHandler.List)
	movements.Get("/export", movementHandler.Export)
	movements.Get("/variant/:id", movementHandler.ByVariant)

	// Stock (protegido): consultas de solo lectura
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockQuery)
	stock.Get("/warehouses/:id", stockHandler.ByWarehouse)
	stock.Get("/variants/:id/total", stockHandler.VariantTotal)

	// Products (protegido; altas y bajas solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Deactivate)
	products.Post("/:id/activate", adminOnly, productHandler.Activate)

	// Variants (protegido)
	variantHandler := NewVariantHandler(deps.VariantUC)
	products.Get("/:id/variants", variantHandler.ListByProduct)
	variants := protected.Group("/variants")
	variants.Post("/", adminOnly, variantHandler.Create)
	variants.Get("/:id", variantHandler.GetByID)
	variants.Put("/:id", adminOnly, variantHandler.Update)
	variants.Delete("/:id", adminOnly, variantHandler.Deactivate)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Deactivate)
	warehouses.Post("/:id/activate", adminOnly, warehouseHandler.Activate)

	// Sizes y Colors (protegido)
	attributeHandler := NewAttributeHandler(deps.AttributeUC)
	protected.Post("/sizes", adminOnly, attributeHandler.CreateSize)
	protected.Get("/sizes", attributeHandler.ListSizes)
	protected.Post("/colors", adminOnly, attributeHandler.CreateColor)
	protected.Get("/colors", attributeHandler.ListColors)
}
