package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/core"
)

// Medidas en mm de una página A4 con márgenes de 10 mm.
const (
	pageHeight = 297.0
	pageMargin = 10.0

	// Distancias al borde inferior bajo las cuales se empieza página nueva.
	sectionBreakDistance = 50.0
	summaryBreakDistance = 30.0

	// Holgura para que maroto no corte la página antes que el planificador.
	pageSlack = 1.0
)

// pageLayout reparte filas en páginas siguiendo un cursor vertical absoluto (desde el borde superior).
// Maroto pagina por su cuenta; el planificador decide los cortes antes de entregarle las filas.
type pageLayout struct {
	cursor float64
	pages  [][]core.Row
	kinds  [][]string
}

func newPageLayout() *pageLayout {
	l := &pageLayout{}
	l.newPage()
	return l
}

func (l *pageLayout) newPage() {
	l.pages = append(l.pages, nil)
	l.kinds = append(l.kinds, nil)
	l.cursor = pageMargin
}

func (l *pageLayout) empty() bool {
	return len(l.pages[len(l.pages)-1]) == 0
}

// fits informa si una fila de altura h entra en la página actual.
func (l *pageLayout) fits(h float64) bool {
	return l.cursor+h <= pageHeight-pageMargin-pageSlack
}

// add agrega la fila; si no entra, la pasa a una página nueva.
func (l *pageLayout) add(kind string, h float64, r core.Row) {
	if !l.fits(h) && !l.empty() {
		l.newPage()
	}
	last := len(l.pages) - 1
	l.pages[last] = append(l.pages[last], r)
	l.kinds[last] = append(l.kinds[last], kind)
	l.cursor += h
}

// breakIfWithin empieza página nueva si el cursor está a menos de distance del borde inferior.
func (l *pageLayout) breakIfWithin(distance float64) {
	if l.cursor > pageHeight-distance && !l.empty() {
		l.newPage()
	}
}

// space deja un hueco vertical; al pie de página se convierte en salto de página.
func (l *pageLayout) space(h float64) {
	if !l.fits(h) {
		l.newPage()
		return
	}
	l.add("gap", h, row.New(h))
}
