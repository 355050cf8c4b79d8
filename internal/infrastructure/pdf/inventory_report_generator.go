// Package pdf renderiza el reporte de inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO + Generated: <fecha>                                 │
//	│  CATEGORÍA                                                   │
//	│  Item | Warehouse | Restaurant | Total | ... | Last Edited   │
//	│  ... una sección por categoría con artículos ...             │
//	│  SUMMARY: Metric | Value                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/lager-api/internal/application/report"
)

var _ report.Generator = (*InventoryReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorHeading = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorHeader  = &props.Color{Red: 51, Green: 65, Blue: 85}
	colorGrid    = &props.Color{Red: 190, Green: 190, Blue: 190}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorBlack   = &props.Color{Red: 0, Green: 0, Blue: 0}
)

// ── Alturas de fila (mm) ──────────────────────────────────────────────────────

const (
	titleHeight     = 10.0
	generatedHeight = 10.0
	noticeHeight    = 10.0
	headingHeight   = 8.0
	tableHeadHeight = 8.0
	tableRowHeight  = 7.0
	sectionGap      = 10.0
)

// Anchos de las 8 columnas sobre la grilla de 12.
var columnSizes = []int{3, 1, 1, 1, 1, 1, 2, 2}

// ── Generator ─────────────────────────────────────────────────────────────────

// InventoryReportGenerator implementa report.Generator usando Maroto v2.
type InventoryReportGenerator struct{}

// NewInventoryReportGenerator construye el generador.
func NewInventoryReportGenerator() *InventoryReportGenerator { return &InventoryReportGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *InventoryReportGenerator) Generate(_ context.Context, r *report.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(pageMargin).WithRightMargin(pageMargin).
		WithTopMargin(pageMargin).WithBottomMargin(pageMargin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		Build()

	m := maroto.New(cfg)

	pages := planPages(r).pages
	m.AddRows(pages[0]...)
	for _, rows := range pages[1:] {
		m.AddPages(page.New().Add(rows...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// planPages ubica todas las filas del reporte en páginas.
func planPages(r *report.Report) *pageLayout {
	l := newPageLayout()
	l.add("title", titleHeight, titleRow(r.Title))
	l.add("generated", generatedHeight, generatedRow(r.GeneratedAt))

	if r.Empty {
		l.add("notice", noticeHeight, noticeRow("No inventory items"))
		return l
	}

	for _, sec := range r.Sections {
		l.breakIfWithin(sectionBreakDistance)
		l.add("heading", headingHeight, headingRow(sec.Title, colorHeading))
		addTable(l, report.Columns, columnSizes, rowsCells(sec.Rows))
		l.space(sectionGap)
	}

	if r.Summary != nil {
		l.breakIfWithin(summaryBreakDistance)
		l.add("heading", headingHeight, headingRow("Summary", colorBlack))
		metrics := r.Summary.Metrics()
		cells := make([][]string, 0, len(metrics))
		for _, mv := range metrics {
			cells = append(cells, []string{mv[0], mv[1]})
		}
		addTable(l, []string{"Metric", "Value"}, []int{6, 6}, cells)
	}
	return l
}

// addTable agrega cabecera y filas; si una fila pasa a otra página se repite la cabecera.
func addTable(l *pageLayout, head []string, sizes []int, body [][]string) {
	if !l.fits(tableHeadHeight + tableRowHeight) {
		l.newPage()
	}
	l.add("table-head", tableHeadHeight, tableHeadRow(head, sizes))
	for _, cells := range body {
		if !l.fits(tableRowHeight) {
			l.newPage()
			l.add("table-head", tableHeadHeight, tableHeadRow(head, sizes))
		}
		l.add("table-row", tableRowHeight, tableBodyRow(cells, sizes))
	}
}

func rowsCells(rows []report.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Cells())
	}
	return out
}

// ── Filas ─────────────────────────────────────────────────────────────────────

func titleRow(title string) core.Row {
	return row.New(titleHeight).Add(
		text.NewCol(12, title, props.Text{Style: fontstyle.Bold, Size: 18, Align: align.Center}),
	)
}

func generatedRow(at string) core.Row {
	return row.New(generatedHeight).Add(
		text.NewCol(12, "Generated: "+at, props.Text{Size: 10, Align: align.Center, Top: 2}),
	)
}

func noticeRow(msg string) core.Row {
	return row.New(noticeHeight).Add(
		text.NewCol(12, msg, props.Text{Size: 12, Align: align.Center, Top: 2}),
	)
}

func headingRow(title string, color *props.Color) core.Row {
	return row.New(headingHeight).Add(
		text.NewCol(12, title, props.Text{Style: fontstyle.Bold, Size: 12, Color: color, Top: 1}),
	)
}

func tableHeadRow(labels []string, sizes []int) core.Row {
	style := &props.Cell{
		BackgroundColor: colorHeader,
		BorderType:      border.Full,
		BorderColor:     colorGrid,
		BorderThickness: 0.2,
	}
	cols := make([]core.Col, 0, len(labels))
	for i, label := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})).WithStyle(style))
	}
	return row.New(tableHeadHeight).Add(cols...)
}

func tableBodyRow(cells []string, sizes []int) core.Row {
	style := &props.Cell{
		BorderType:      border.Full,
		BorderColor:     colorGrid,
		BorderThickness: 0.2,
	}
	cols := make([]core.Col, 0, len(cells))
	for i, v := range cells {
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Color: colorBlack, Top: 1.5, Left: 1, Right: 1,
		})).WithStyle(style))
	}
	return row.New(tableRowHeight).Add(cols...)
}
