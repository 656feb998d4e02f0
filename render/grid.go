package render

import "github.com/mattn/go-runewidth"

// Attr selects the visual attributes of one drawn cell. Color indexes
// the configured palette; a negative index means the default color.
type Attr struct {
	Color   int
	Bold    bool
	Reverse bool
}

// Grid is the character-cell surface the rasterizer draws on. The
// terminal implementation lives in the term package; tests use an
// in-memory fake.
type Grid interface {
	Set(row, col int, ch rune, attr Attr)
	Size() (rows, cols int)
}

// BlockGlyph is the reserved glyph rendered as a reverse-video solid
// block instead of a literal character. It distinguishes a second
// unlabeled series.
const BlockGlyph rune = 0

func hline(g Grid, row, col int, n int, ch rune, a Attr) {
	for i := 0; i < n; i++ {
		g.Set(row, col+i, ch, a)
	}
}

func vline(g Grid, row, col int, n int, ch rune, a Attr) {
	for i := 0; i < n; i++ {
		g.Set(row+i, col, ch, a)
	}
}

func text(g Grid, row, col int, s string, a Attr) {
	for _, r := range s {
		g.Set(row, col, r, a)
		col += runewidth.RuneWidth(r)
	}
}

// textTo draws s starting at col and stops before maxCol.
func textTo(g Grid, row, col int, s string, maxCol int, a Attr) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if col+w > maxCol {
			return
		}
		g.Set(row, col, r, a)
		col += w
	}
}
