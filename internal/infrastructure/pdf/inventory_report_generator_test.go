package pdf

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lager-api/internal/application/report"
)

func sectionWith(title string, n int) report.Section {
	rows := make([]report.Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, report.Row{Name: fmt.Sprintf("Item %d", i), Warehouse: "1", Restaurant: "0",
			Total: "1", ReorderLevel: "0", Cost: "$1.00", Expiry: "N/A", LastEdited: "N/A"})
	}
	return report.Section{Title: title, Rows: rows}
}

func fullReport(sections ...report.Section) *report.Report {
	return &report.Report{
		Title: "Burger Warehouse Inventory Report", GeneratedAt: "18.10.2026, 14:05:09",
		Sections: sections,
		Summary:  &report.Summary{TotalItems: 1, TotalValue: "$1.00", LowStockItems: 0},
	}
}

func TestPlanPages_InventarioVacioUnaPagina(t *testing.T) {
	l := planPages(&report.Report{Title: "T", GeneratedAt: "now", Empty: true})
	require.Len(t, l.pages, 1)
	assert.Equal(t, []string{"title", "generated", "notice"}, l.kinds[0])
}

func TestPlanPages_SeccionCercaDelPieEmpiezaPaginaNueva(t *testing.T) {
	// 28 filas dejan el cursor en 252 mm tras el hueco: a menos de 50 mm del borde.
	l := planPages(fullReport(sectionWith("Burger", 28), sectionWith("Sauces", 2)))

	require.GreaterOrEqual(t, len(l.pages), 2)
	assert.Equal(t, "heading", l.kinds[1][0], "la segunda sección abre la página 2")
	assert.Equal(t, "table-head", l.kinds[1][1])
}

func TestPlanPages_ResumenCercaDelPieEmpiezaPaginaNueva(t *testing.T) {
	l := planPages(fullReport(sectionWith("Burger", 31)))

	require.Len(t, l.pages, 2)
	assert.Equal(t, []string{"heading", "table-head", "table-row", "table-row", "table-row"}, l.kinds[1])
}

func TestPlanPages_FilasQueNoEntranPasanConCabecera(t *testing.T) {
	l := planPages(fullReport(sectionWith("Burger", 28)))

	require.Len(t, l.pages, 2)
	first := l.kinds[0]
	assert.Equal(t, "table-row", first[len(first)-1], "el resumen empieza en la página 1")
	assert.Equal(t, []string{"table-head", "table-row"}, l.kinds[1])
}

func TestPlanPages_InventarioLargoOcupaVariasPaginas(t *testing.T) {
	l := planPages(fullReport(sectionWith("Burger", 120), sectionWith("Beverages", 40)))

	require.GreaterOrEqual(t, len(l.pages), 5)
	rows := 0
	for i, kinds := range l.kinds {
		if i > 0 {
			assert.Contains(t, []string{"table-head", "heading"}, kinds[0], "página %d", i+1)
		}
		for _, k := range kinds {
			if k == "table-row" {
				rows++
			}
		}
	}
	assert.Equal(t, 120+40+3, rows)
}

func TestGenerate_DevuelvePDF(t *testing.T) {
	g := NewInventoryReportGenerator()

	out, err := g.Generate(context.Background(), fullReport(sectionWith("Burger", 50)))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	out, err = g.Generate(context.Background(), &report.Report{Title: "T", GeneratedAt: "now", Empty: true})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
