package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/ovh/ttygraph/graph"
)

const versionString = "github.com/ovh/ttygraph"

// ansicWidth is the rendered width of a time.ANSIC timestamp, which is
// fixed-width. The identifier string above fits within it too.
const ansicWidth = len(time.ANSIC)

// DrawAxes draws the vertical and horizontal axis lines with their
// arrow terminators, and five value labels at 0%, 25%, 50%, 75% and
// 100% of the range.
func (r *Rasterizer) DrawAxes(l Layout, sc graph.Scale, unit string) {
	a := Attr{Color: -1}
	vline(r.Grid, l.PlotTop, l.AxisCol, l.PlotHeight, '│', a)
	hline(r.Grid, l.AxisRow, l.AxisCol, l.PlotWidth, '─', a)
	r.Grid.Set(l.AxisRow, l.AxisCol+l.PlotWidth, '>', a)
	r.Grid.Set(l.PlotTop, l.AxisCol, '^', a)
	r.Grid.Set(l.AxisRow, l.AxisCol, '└', a)
	for i := 0; i <= 4; i++ {
		f := float64(i) / 4
		row := l.PlotTop + int(math.Round(f*float64(l.PlotHeight-1)))
		label := FormatValue(sc.Max - f*(sc.Max-sc.Min))
		if unit != "" {
			label += " " + unit
		}
		text(r.Grid, row, l.AxisCol+2, label, a)
	}
}

// DrawTitle centers the title on the top row.
func (r *Rasterizer) DrawTitle(l Layout, title string) {
	col := (l.Cols - runewidth.StringWidth(title)) / 2
	if col < 0 {
		col = 0
	}
	text(r.Grid, 0, col, title, Attr{Color: -1, Bold: true})
}

// DrawDetails renders one footer row per series, in registry order:
// glyph, name and the cycle statistics. In rate mode the measured
// interval is appended to the first row. The bottom two rows share the
// screen with the timestamp corner and stop short of it.
func (r *Rasterizer) DrawDetails(buffers []*graph.Buffer, l Layout, unit string, rateInterval float64, attrOf func(int) Attr) {
	for i, b := range buffers {
		row := l.DetailRow + i
		if row >= l.Rows {
			break
		}
		a := attrOf(i)
		glyph, ga := b.Glyph, a
		if glyph == BlockGlyph {
			glyph, ga.Reverse = ' ', true
		}
		r.Grid.Set(row, 5, glyph, ga)
		s := fmt.Sprintf("%s last=%s min=%s max=%s avg=%s median=%s",
			b.Name,
			FormatValue(b.LastValid()),
			FormatValue(b.Min),
			FormatValue(b.Max),
			FormatValue(b.Avg),
			FormatValue(b.Median))
		if unit != "" {
			s += " " + unit
		}
		if i == 0 && rateInterval > 0 {
			s += fmt.Sprintf(" interval=%ss", FormatValue(rateInterval))
		}
		limit := l.Cols
		if row >= l.Rows-2 {
			limit = l.Cols - ansicWidth - 1
		}
		textTo(r.Grid, row, 7, s, limit, a)
	}
}

// DrawTimestamp puts the time of the last sample and the project
// identifier in the bottom-right corner.
func (r *Rasterizer) DrawTimestamp(l Layout, t time.Time) {
	a := Attr{Color: -1}
	ts := t.Format(time.ANSIC)
	text(r.Grid, l.Rows-2, l.Cols-runewidth.StringWidth(ts), ts, a)
	text(r.Grid, l.Rows-1, l.Cols-runewidth.StringWidth(versionString), versionString, a)
}

// DrawWaiting centers the splash shown until the first sample arrives.
func (r *Rasterizer) DrawWaiting() {
	rows, cols := r.Grid.Size()
	msg := "waiting for data from stdin"
	col := (cols - len(msg)) / 2
	if col < 0 {
		col = 0
	}
	text(r.Grid, rows/2, col, msg, Attr{Color: -1})
}

// DrawTooSmall replaces the frame with a diagnostic line when the
// terminal cannot hold a plot.
func (r *Rasterizer) DrawTooSmall(err error) {
	text(r.Grid, 0, 0, err.Error(), Attr{Color: -1, Bold: true})
}

// FormatValue renders a value as a trimmed decimal: no trailing zeros,
// integers without a decimal point.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}
