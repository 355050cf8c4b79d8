// Command seed siembra contraseñas, categorías e inventario de ejemplo en el almacenamiento configurado.
// Con -report escribe además el reporte PDF en REPORT_OUTPUT_DIR.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/lager-api/internal/application/inventory"
	"github.com/jhoicas/lager-api/internal/application/report"
	"github.com/jhoicas/lager-api/internal/infrastructure/kvstore"
	infrapdf "github.com/jhoicas/lager-api/internal/infrastructure/pdf"
	"github.com/jhoicas/lager-api/internal/infrastructure/storage"
	"github.com/jhoicas/lager-api/internal/scheduler"
	"github.com/jhoicas/lager-api/pkg/config"
	"github.com/jhoicas/lager-api/pkg/logger"
)

func main() {
	withReport := flag.Bool("report", false, "exportar el reporte PDF después de sembrar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer store.Close(context.Background())

	res, err := inventory.NewSeedUseCase(store.Runner).Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar")
	}
	log.Info().
		Str("driver", store.Driver).
		Bool("credentials", res.Credentials).
		Bool("categories", res.Categories).
		Bool("inventory", res.Inventory).
		Msg("seed completado")

	if !*withReport {
		return
	}
	reportUC := report.NewReportUseCase(
		kvstore.NewInventoryRepository(store.KV),
		kvstore.NewCategoryRepository(store.KV),
		report.NewBuilder(cfg.Report.Title, cfg.Report.Locale, time.Local),
		infrapdf.NewInventoryReportGenerator(),
		log,
	)
	path, err := scheduler.NewScheduler("", cfg.Report.OutputDir, reportUC, log).ExportNow(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("exportar reporte")
	}
	log.Info().Str("path", path).Msg("reporte escrito")
}
