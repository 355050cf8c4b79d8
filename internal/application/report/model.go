// Package report arma el modelo del reporte de inventario (independiente del formato) y lo exporta.
package report

import "context"

// Filename nombre del archivo exportado.
const Filename = "inventory_report.pdf"

// Columnas de la tabla por categoría.
var Columns = []string{"Item", "Warehouse", "Restaurant", "Total", "Reorder Lvl", "Cost/Unit", "Expiry", "Last Edited"}

// Row fila ya formateada de un artículo.
type Row struct {
	Name         string
	Warehouse    string
	Restaurant   string
	Total        string
	ReorderLevel string
	Cost         string
	Expiry       string
	LastEdited   string
	LowStock     bool
}

// Cells valores de la fila en el orden de Columns.
func (r Row) Cells() []string {
	return []string{r.Name, r.Warehouse, r.Restaurant, r.Total, r.ReorderLevel, r.Cost, r.Expiry, r.LastEdited}
}

// Section una categoría con al menos un artículo.
type Section struct {
	Title string
	Rows  []Row
}

// Summary métricas finales del reporte.
type Summary struct {
	TotalItems    int
	TotalValue    string
	LowStockItems int
}

// Metrics pares Metric/Value en orden de impresión.
func (s Summary) Metrics() [][2]string {
	return [][2]string{
		{"Total Items", itoa(s.TotalItems)},
		{"Total Inventory Value", s.TotalValue},
		{"Low Stock Items", itoa(s.LowStockItems)},
	}
}

// Report modelo completo. Con Empty=true no hay secciones ni resumen.
type Report struct {
	Title       string
	GeneratedAt string
	Empty       bool
	Sections    []Section
	Summary     *Summary
	MissingCost int // artículos sin costo registrado (valor 0, "N/A" en la tabla)
}

// Generator puerto de salida que renderiza el modelo a bytes (PDF).
type Generator interface {
	Generate(ctx context.Context, r *Report) ([]byte, error)
}
