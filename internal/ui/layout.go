package ui

import (
	"github.com/five82/tally/internal/animation"
)

// Layout constants. Rows are counted from the top of the main view.
const (
	leftMargin = 2
	buttonGap  = 2

	rowTitle   = 0
	rowCounter = 2
	rowHint    = 3
	rowCanvas  = 5

	// Rows around the canvas that are always drawn: title, blank, counter,
	// hint, blank, then blank, buttons, blank, one data line, blank, footer.
	fixedRows = 11

	maxCanvasScale = 12
)

// zone is a clickable run of cells on one row. x1 is exclusive.
type zone struct {
	row, x0, x1 int
}

func (z zone) contains(x, y int) bool {
	return y == z.row && x >= z.x0 && x < z.x1
}

// layout records where the clickable parts of the main view ended up.
type layout struct {
	dec, count, inc zone
	toggle, fetch   zone

	canvasScale int // canvas pixels per cell edge
	canvasCols  int
	canvasRows  int

	rowButtons int
	rowData    int
}

// canvasScale picks the smallest downsampling factor that fits the surface
// into cols×rows cells, where each cell shows two vertically stacked pixels.
func canvasScale(cols, rows int) int {
	for s := 1; s < maxCanvasScale; s++ {
		w := animation.CanvasWidth / s
		h := (animation.CanvasHeight/s + 1) / 2
		if w <= cols && h <= rows {
			return s
		}
	}
	return maxCanvasScale
}

// computeLayout places the counter row, canvas and buttons for a terminal of
// the model's size. View and mouse handling both go through it so hit zones
// always match what was drawn.
func (m Model) computeLayout() layout {
	var l layout

	x := leftMargin
	l.dec = zone{row: rowCounter, x0: x, x1: x + cellWidth(decLabel)}
	x = l.dec.x1 + buttonGap
	l.count = zone{row: rowCounter, x0: x, x1: x + cellWidth(m.countText())}
	x = l.count.x1 + buttonGap
	l.inc = zone{row: rowCounter, x0: x, x1: x + cellWidth(incLabel)}

	availCols := m.width - 2*leftMargin
	availRows := m.height - fixedRows
	l.canvasScale = canvasScale(availCols, availRows)
	l.canvasCols = animation.CanvasWidth / l.canvasScale
	l.canvasRows = (animation.CanvasHeight/l.canvasScale + 1) / 2

	l.rowButtons = rowCanvas + l.canvasRows + 1
	l.rowData = l.rowButtons + 2

	x = leftMargin
	l.toggle = zone{row: l.rowButtons, x0: x, x1: x + cellWidth(m.toggleLabel())}
	x = l.toggle.x1 + buttonGap
	l.fetch = zone{row: l.rowButtons, x0: x, x1: x + cellWidth(m.fetchLabel())}

	return l
}
