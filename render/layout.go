package render

import "github.com/pkg/errors"

// Minimum terminal size below which a cycle is skipped with a
// diagnostic instead of a garbled frame.
const (
	minCols = 12
	minRows = 5
)

// Layout places the plot body on the grid: the title sits on row 0, the
// plot body above the horizontal axis, and one detail row per series at
// the bottom (two at least, the last two doubling as timestamp rows).
type Layout struct {
	Rows int
	Cols int

	PlotTop    int // first row of the plot body
	PlotHeight int
	PlotWidth  int

	AxisCol   int // column of the vertical axis
	DataCol   int // first data column
	AxisRow   int // row of the horizontal axis
	DetailRow int // first row of the detail panel
}

// NewLayout computes the geometry for the given terminal size and
// series count.
func NewLayout(rows, cols, series int) (Layout, error) {
	detail := series
	if detail < 2 {
		detail = 2
	}
	l := Layout{
		Rows:       rows,
		Cols:       cols,
		PlotTop:    1,
		PlotWidth:  cols - 4,
		AxisCol:    2,
		DataCol:    3,
		AxisRow:    rows - detail - 1,
		DetailRow:  rows - detail,
		PlotHeight: rows - detail - 2,
	}
	if cols < minCols || rows < minRows || l.PlotHeight < 2 || l.PlotWidth < 2 {
		return l, errors.Errorf("terminal too small (%dx%d)", cols, rows)
	}
	return l, nil
}
