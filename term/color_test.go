package term

import (
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColors(t *testing.T) {
	palette, err := ParseColors([]string{"red", " Green", "CYAN"})
	require.NoError(t, err)
	assert.Equal(t, []termbox.Attribute{termbox.ColorRed, termbox.ColorGreen, termbox.ColorCyan}, palette)
}

func TestParseColorsEmpty(t *testing.T) {
	palette, err := ParseColors(nil)
	require.NoError(t, err)
	assert.Empty(t, palette)
}

func TestParseColorsUnknownName(t *testing.T) {
	_, err := ParseColors([]string{"red", "sparkly"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkly")
}
