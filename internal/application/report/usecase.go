package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/lager-api/internal/domain/repository"
	"github.com/jhoicas/lager-api/pkg/logger"
)

// ReportUseCase exporta el reporte de inventario.
type ReportUseCase struct {
	items      repository.InventoryRepository
	categories repository.CategoryRepository
	builder    *Builder
	generator  Generator
	log        *logger.Logger
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso. log puede ser nil.
func NewReportUseCase(
	items repository.InventoryRepository,
	categories repository.CategoryRepository,
	builder *Builder,
	generator Generator,
	log *logger.Logger,
) *ReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{
		items:      items,
		categories: categories,
		builder:    builder,
		generator:  generator,
		log:        log.Component("report"),
		now:        time.Now,
	}
}

// Build lee el estado actual y arma el modelo.
func (uc *ReportUseCase) Build(ctx context.Context) (*Report, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.builder.Build(items, cats, uc.now()), nil
}

// ExportInventoryReport renderiza el reporte y devuelve los bytes con el nombre de archivo.
func (uc *ReportUseCase) ExportInventoryReport(ctx context.Context) ([]byte, string, error) {
	r, err := uc.Build(ctx)
	if err != nil {
		return nil, "", err
	}
	if r.MissingCost > 0 {
		uc.log.Warn().Int("items_without_cost", r.MissingCost).
			Msg("artículos sin costo: cuentan 0 en el valor total y se muestran como N/A")
	}
	pdf, err := uc.generator.Generate(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("generar reporte: %w", err)
	}
	uc.log.Info().Int("sections", len(r.Sections)).Int("bytes", len(pdf)).Msg("reporte generado")
	return pdf, Filename, nil
}
