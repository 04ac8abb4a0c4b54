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

	"github.com/wattscycling/warehouse-api/internal/application/auth"
	"github.com/wattscycling/warehouse-api/internal/application/ledger"
	"github.com/wattscycling/warehouse-api/internal/application/usecase"
	"github.com/wattscycling/warehouse-api/internal/infrastructure/mailer"
	"github.com/wattscycling/warehouse-api/internal/infrastructure/postgres"
	"github.com/wattscycling/warehouse-api/internal/infrastructure/report"
	httpRouter "github.com/wattscycling/warehouse-api/internal/interfaces/http"
	"github.com/wattscycling/warehouse-api/pkg/config"
	"github.com/wattscycling/warehouse-api/pkg/logger"
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

	// Repositorios sobre el pool (lecturas fuera de transacción)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	sizeRepo := postgres.NewSizeRepository(pool)
	colorRepo := postgres.NewColorRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Infraestructura de notificaciones y reportes
	movementMailer := mailer.NewMovementMailer(cfg.SMTP, log)
	movementReport := report.NewMovementReport()

	// Casos de uso
	movementEngine := ledger.NewUseCase(txRunner, variantRepo, warehouseRepo, movementMailer, log)
	historyUC := ledger.NewHistoryUseCase(movementRepo, variantRepo, movementReport)
	stockQueryUC := ledger.NewStockQueryUseCase(stockRepo, variantRepo, warehouseRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	variantUC := usecase.NewVariantUseCase(variantRepo, productRepo, sizeRepo, colorRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	attributeUC := usecase.NewAttributeUseCase(sizeRepo, colorRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Watts Cycling Warehouse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MovementEngine: movementEngine,
		History:        historyUC,
		StockQuery:     stockQueryUC,
		ProductUC:      productUC,
		VariantUC:      variantUC,
		WarehouseUC:    warehouseUC,
		AttributeUC:    attributeUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
