package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/lager-api/pkg/logger"
)

// ReportExporter genera el reporte de inventario (report.ReportUseCase).
type ReportExporter interface {
	ExportInventoryReport(ctx context.Context) ([]byte, string, error)
}

// Scheduler exporta el reporte PDF a disco según una expresión cron de 5 campos.
type Scheduler struct {
	cron      *cron.Cron
	exporter  ReportExporter
	schedule  string
	outputDir string
	logger    *logger.Logger
}

// NewScheduler crea el scheduler. schedule vacío deja el scheduler sin tareas.
func NewScheduler(schedule, outputDir string, exporter ReportExporter, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		cron:      cron.New(),
		exporter:  exporter,
		schedule:  schedule,
		outputDir: outputDir,
		logger:    log.Component("scheduler"),
	}
}

// Start registra la exportación y arranca el cron. Una expresión inválida devuelve error.
func (s *Scheduler) Start() error {
	if s.schedule == "" {
		s.logger.Info().Msg("exportación programada desactivada")
		return nil
	}
	if _, err := s.cron.AddFunc(s.schedule, s.exportJob); err != nil {
		return fmt.Errorf("scheduler: expresión cron %q: %w", s.schedule, err)
	}
	s.logger.Info().Str("schedule", s.schedule).Str("dir", s.outputDir).Msg("scheduler iniciado")
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que termine una exportación en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("scheduler detenido")
}

// ExportNow genera el reporte y lo escribe en outputDir. Devuelve la ruta escrita.
func (s *Scheduler) ExportNow(ctx context.Context) (string, error) {
	pdf, name, err := s.exporter.ExportInventoryReport(ctx)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de reportes: %w", err)
	}
	path := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("escribir %s: %w", path, err)
	}
	return path, nil
}

func (s *Scheduler) exportJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	path, err := s.ExportNow(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("falló la exportación programada del reporte")
		return
	}
	s.logger.Info().Str("path", path).Msg("reporte exportado")
}
