package render

import "strings"

type fakeCell struct {
	ch   rune
	attr Attr
}

// fakeGrid records every Set call for assertions.
type fakeGrid struct {
	rows, cols int
	cells      map[[2]int]fakeCell
}

func newFakeGrid(rows, cols int) *fakeGrid {
	return &fakeGrid{rows: rows, cols: cols, cells: make(map[[2]int]fakeCell)}
}

func (g *fakeGrid) Set(row, col int, ch rune, attr Attr) {
	g.cells[[2]int{row, col}] = fakeCell{ch: ch, attr: attr}
}

func (g *fakeGrid) Size() (int, int) {
	return g.rows, g.cols
}

func (g *fakeGrid) at(row, col int) rune {
	return g.cells[[2]int{row, col}].ch
}

func (g *fakeGrid) attrAt(row, col int) Attr {
	return g.cells[[2]int{row, col}].attr
}

func (g *fakeGrid) has(row, col int) bool {
	_, ok := g.cells[[2]int{row, col}]
	return ok
}

// rowText collects the written cells of one row, left to right, skipping
// untouched columns.
func (g *fakeGrid) rowText(row int) string {
	var sb strings.Builder
	for col := 0; col < g.cols; col++ {
		if c, ok := g.cells[[2]int{row, col}]; ok {
			sb.WriteRune(c.ch)
		}
	}
	return sb.String()
}
