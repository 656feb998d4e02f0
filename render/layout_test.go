package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	l, err := NewLayout(24, 80, 1)
	require.NoError(t, err)
	assert.Equal(t, 76, l.PlotWidth)
	assert.Equal(t, 1, l.PlotTop)
	assert.Equal(t, 20, l.PlotHeight, "title, axis and two detail rows are reserved")
	assert.Equal(t, 21, l.AxisRow)
	assert.Equal(t, 22, l.DetailRow)
	assert.Equal(t, 2, l.AxisCol)
	assert.Equal(t, 3, l.DataCol)
}

func TestNewLayoutDetailRowsGrowWithSeries(t *testing.T) {
	l, err := NewLayout(24, 80, 5)
	require.NoError(t, err)
	assert.Equal(t, 19, l.DetailRow)
	assert.Equal(t, 18, l.AxisRow)
	assert.Equal(t, 17, l.PlotHeight)
}

func TestNewLayoutTooSmall(t *testing.T) {
	_, err := NewLayout(3, 80, 1)
	assert.Error(t, err)
	_, err = NewLayout(24, 8, 1)
	assert.Error(t, err)
	// detail panel eats the whole plot body
	_, err = NewLayout(6, 80, 10)
	assert.Error(t, err)
}
