package report

import (
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/inventory"
)

const notAvailable = "N/A"

// DefaultTitle título del reporte si no se configura otro.
const DefaultTitle = "Burger Warehouse Inventory Report"

type dateLayouts struct {
	date     string
	dateTime string
}

var supportedLocales = []language.Tag{
	language.AmericanEnglish,
	language.German,
	language.BritishEnglish,
	language.Spanish,
	language.French,
}

var localeLayouts = []dateLayouts{
	{date: "1/2/2006", dateTime: "1/2/2006, 3:04:05 PM"},
	{date: "2.1.2006", dateTime: "2.1.2006, 15:04:05"},
	{date: "02/01/2006", dateTime: "02/01/2006, 15:04:05"},
	{date: "2/1/2006", dateTime: "2/1/2006, 15:04:05"},
	{date: "02/01/2006", dateTime: "02/01/2006 15:04:05"},
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Builder convierte artículos y categorías en el modelo del reporte.
type Builder struct {
	title   string
	layouts dateLayouts
	loc     *time.Location
}

// NewBuilder construye el builder. locale es un tag BCP-47 (de-DE, en-US...);
// uno desconocido o vacío usa en-US.
func NewBuilder(title, locale string, loc *time.Location) *Builder {
	if title == "" {
		title = DefaultTitle
	}
	if loc == nil {
		loc = time.Local
	}
	idx := 0
	if tag, err := language.Parse(locale); err == nil {
		_, idx, _ = localeMatcher.Match(tag)
	}
	return &Builder{title: title, layouts: localeLayouts[idx], loc: loc}
}

// FormatDate fecha corta según el locale.
func (b *Builder) FormatDate(t time.Time) string {
	return t.In(b.loc).Format(b.layouts.date)
}

// FormatDateTime fecha y hora según el locale.
func (b *Builder) FormatDateTime(t time.Time) string {
	return t.In(b.loc).Format(b.layouts.dateTime)
}

// Build arma el reporte. Las categorías sin artículos se omiten; los artículos huérfanos
// no aparecen en las tablas pero sí cuentan en el resumen.
func (b *Builder) Build(items []entity.InventoryItem, categories []entity.Category, generatedAt time.Time) *Report {
	r := &Report{
		Title:       b.title,
		GeneratedAt: b.FormatDateTime(generatedAt),
	}
	if len(items) == 0 {
		r.Empty = true
		return r
	}

	for _, g := range inventory.GroupByCategory(items, categories) {
		if len(g.Items) == 0 {
			continue
		}
		sec := Section{Title: g.Category.Name, Rows: make([]Row, 0, len(g.Items))}
		for _, it := range g.Items {
			sec.Rows = append(sec.Rows, b.row(it))
		}
		r.Sections = append(r.Sections, sec)
	}

	for _, it := range items {
		if it.Cost == nil {
			r.MissingCost++
		}
	}
	r.Summary = &Summary{
		TotalItems:    len(items),
		TotalValue:    "$" + inventory.TotalValue(items).StringFixed(2),
		LowStockItems: len(inventory.ComputeLowStock(items)),
	}
	return r
}

func (b *Builder) row(it entity.InventoryItem) Row {
	cost := notAvailable
	if it.Cost != nil {
		cost = "$" + it.Cost.StringFixed(2)
	}
	expiry := it.ExpiryDate
	if expiry == "" {
		expiry = notAvailable
	}
	edited := notAvailable
	if !it.LastEdited.IsZero() {
		edited = b.FormatDate(it.LastEdited)
	}
	return Row{
		Name:         it.Name,
		Warehouse:    itoa(it.WarehouseQty),
		Restaurant:   itoa(it.RestaurantQty),
		Total:        itoa(it.Total()),
		ReorderLevel: itoa(it.ReorderLevel),
		Cost:         cost,
		Expiry:       expiry,
		LastEdited:   edited,
		LowStock:     it.IsLowStock(),
	}
}

func itoa(n int) string { return strconv.Itoa(n) }
