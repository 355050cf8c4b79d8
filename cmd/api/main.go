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

	_ "github.com/jhoicas/lager-api/docs"
	"github.com/jhoicas/lager-api/internal/application/auth"
	"github.com/jhoicas/lager-api/internal/application/inventory"
	"github.com/jhoicas/lager-api/internal/application/report"
	"github.com/jhoicas/lager-api/internal/application/usecase"
	"github.com/jhoicas/lager-api/internal/infrastructure/kvstore"
	infrapdf "github.com/jhoicas/lager-api/internal/infrastructure/pdf"
	"github.com/jhoicas/lager-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/lager-api/internal/interfaces/http"
	"github.com/jhoicas/lager-api/internal/scheduler"
	"github.com/jhoicas/lager-api/pkg/config"
	"github.com/jhoicas/lager-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer store.Close(context.Background())

	inventoryRepo := kvstore.NewInventoryRepository(store.KV)
	categoryRepo := kvstore.NewCategoryRepository(store.KV)
	credentialRepo := kvstore.NewCredentialRepository(store.KV)
	sessionRepo := kvstore.NewSessionRepository(store.KV)

	authUC := auth.NewAuthUseCase(credentialRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	credentialUC := auth.NewCredentialUseCase(credentialRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	inventoryUC := inventory.NewInventoryUseCase(inventoryRepo, categoryRepo)

	// Contraseñas por defecto siempre; categorías e inventario de ejemplo solo si se pide.
	if cfg.Seed.SampleData {
		res, err := inventory.NewSeedUseCase(store.Runner).Seed(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("sembrar datos de ejemplo")
		}
		log.Info().Interface("seeded", res).Msg("datos de ejemplo")
	} else if seeded, err := authUC.InitializeDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("inicializar contraseñas")
	} else if seeded {
		log.Warn().Msg("contraseñas de demostración creadas (admin123 / user123)")
	}

	// PDF: reporte de inventario por categoría
	reportUC := report.NewReportUseCase(
		inventoryRepo, categoryRepo,
		report.NewBuilder(cfg.Report.Title, cfg.Report.Locale, time.Local),
		infrapdf.NewInventoryReportGenerator(),
		log,
	)

	sched := scheduler.NewScheduler(cfg.Report.CronSchedule, cfg.Report.OutputDir, reportUC, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("iniciar scheduler")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lager API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CredentialUC: credentialUC,
		CategoryUC:   categoryUC,
		InventoryUC:  inventoryUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
	sched.Stop()

	log.Info().Msg("aplicación detenida")
}
