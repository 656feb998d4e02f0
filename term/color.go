package term

import (
	"strings"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

var colorNames = map[string]termbox.Attribute{
	"default": termbox.ColorDefault,
	"black":   termbox.ColorBlack,
	"red":     termbox.ColorRed,
	"green":   termbox.ColorGreen,
	"yellow":  termbox.ColorYellow,
	"blue":    termbox.ColorBlue,
	"magenta": termbox.ColorMagenta,
	"cyan":    termbox.ColorCyan,
	"white":   termbox.ColorWhite,
}

// ParseColors maps color names to terminal attributes. An unrecognized
// name is a configuration error, fatal at startup.
func ParseColors(names []string) ([]termbox.Attribute, error) {
	palette := make([]termbox.Attribute, 0, len(names))
	for _, name := range names {
		attr, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, errors.Errorf("unrecognized color %q", name)
		}
		palette = append(palette, attr)
	}
	return palette, nil
}
