package render

import (
	"math"

	"github.com/ovh/ttygraph/graph"
)

// Rasterizer draws series onto a grid using the shared vertical scale
// of the cycle.
type Rasterizer struct {
	Grid    Grid
	ErrHigh rune
	ErrLow  rune
}

// Row maps a value to a row of the plot body, 0 being the top row.
// Values at or above a configured hard maximum pin to the top row with
// the high-error marker; values at or below the global minimum pin to
// the bottom row, with the low-error marker when a hard minimum cuts
// them off.
func Row(v float64, plotHeight int, sc graph.Scale, bounds graph.Bounds) (row int, errHigh, errLow bool) {
	if bounds.HardMax.Set && v >= bounds.HardMax.Value {
		return 0, true, false
	}
	if v <= sc.Min {
		return plotHeight - 1, false, bounds.HardMin.Set && v <= bounds.HardMin.Value
	}
	span := sc.Max - sc.Min
	if span <= 0 {
		return plotHeight - 1, false, false
	}
	row = plotHeight - int(math.Floor((v-sc.Min)/span*float64(plotHeight))) - 1
	if row < 0 {
		row = 0
	}
	if row > plotHeight-1 {
		row = plotHeight - 1
	}
	return row, false, false
}

// DrawSeries renders one buffer column by column, oldest to newest. A
// sentinel leaves the column empty and breaks line continuity; bars
// fill down to the baseline; lines connect to the previous column's
// row.
func (r *Rasterizer) DrawSeries(b *graph.Buffer, l Layout, sc graph.Scale, bounds graph.Bounds, attr Attr) {
	prev := -1
	for i, s := range b.Samples() {
		if i >= l.PlotWidth {
			break
		}
		if !s.Valid() {
			prev = -1
			continue
		}
		col := l.DataCol + i
		row, hiErr, loErr := Row(s.Float64(), l.PlotHeight, sc, bounds)
		glyph := b.Glyph
		switch {
		case hiErr:
			glyph = r.ErrHigh
		case loErr:
			glyph = r.ErrLow
		}
		a := attr
		if glyph == BlockGlyph {
			glyph, a.Reverse = ' ', true
		}
		switch {
		case b.Bars:
			vline(r.Grid, l.PlotTop+row, col, l.PlotHeight-row, glyph, a)
		case prev >= 0 && prev != row:
			top, bottom := prev, row
			if top > bottom {
				top, bottom = bottom, top
			}
			vline(r.Grid, l.PlotTop+top, col, bottom-top+1, glyph, a)
		default:
			r.Grid.Set(l.PlotTop+row, col, glyph, a)
		}
		prev = row
	}
}
