package term

import (
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"github.com/ovh/ttygraph/render"
)

// Screen owns the terminal session and implements render.Grid on top of
// termbox. Acquire it once with Open and release it exactly once with
// Close; Close restores the cursor, raw mode and the normal screen on
// every exit path.
type Screen struct {
	palette []termbox.Attribute
}

// Open acquires the terminal and registers the color palette. It fails
// when no terminal is available, which is fatal for the caller.
func Open(palette []termbox.Attribute) (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "cannot acquire terminal")
	}
	termbox.HideCursor()
	return &Screen{palette: palette}, nil
}

// Close releases the terminal.
func (s *Screen) Close() {
	termbox.Close()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (rows, cols int) {
	w, h := termbox.Size()
	return h, w
}

// Clear wipes the back buffer before a new frame.
func (s *Screen) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

// Flush presents the frame.
func (s *Screen) Flush() {
	termbox.Flush()
}

// Sync re-queries the terminal after a resize and repaints from
// scratch.
func (s *Screen) Sync() {
	termbox.Sync()
}

// Set places one glyph. A negative attribute color keeps the terminal
// default; otherwise the color indexes the palette, cycling when there
// are more series than colors.
func (s *Screen) Set(row, col int, ch rune, a render.Attr) {
	fg := termbox.ColorDefault
	if a.Color >= 0 && len(s.palette) > 0 {
		fg = s.palette[a.Color%len(s.palette)]
	}
	if a.Bold {
		fg |= termbox.AttrBold
	}
	if a.Reverse {
		fg |= termbox.AttrReverse
	}
	termbox.SetCell(col, row, ch, fg, termbox.ColorDefault)
}
