package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAlignment(t *testing.T) {
	r := NewRegistry(10)
	r.Observe("a", Value(1))
	r.MarkAbsent()
	r.Observe("a", Value(2))
	r.MarkAbsent()
	r.Observe("a", Value(3))
	r.Observe("b", Value(4))
	r.MarkAbsent()

	a, b := r.Buffer("a"), r.Buffer("b")
	require.Equal(t, a.Len(), b.Len(), "buffers created at different times stay column-aligned")
	assert.False(t, b.Samples()[0].Valid())
	assert.False(t, b.Samples()[1].Valid())
	assert.Equal(t, 4.0, b.Samples()[2].Float64())
}

func TestRegistryAlignmentNewSeriesFirst(t *testing.T) {
	r := NewRegistry(10)
	// cycle 1: "a 1"
	r.Observe("a", Value(1))
	r.MarkAbsent()
	// cycle 2: "b 2 a 3" — the new series leads the line
	r.Observe("b", Value(2))
	r.Observe("a", Value(3))
	r.MarkAbsent()

	a, b := r.Buffer("a"), r.Buffer("b")
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2, b.Len(), "observation order within a cycle must not skew alignment")
	assert.False(t, b.Samples()[0].Valid())
	assert.Equal(t, 2.0, b.Samples()[1].Float64())
	assert.Equal(t, 3.0, a.Samples()[1].Float64())
}

func TestRegistryAlignmentSilentSeries(t *testing.T) {
	r := NewRegistry(10)
	// cycle 1: "a 1"
	r.Observe("a", Value(1))
	r.MarkAbsent()
	// cycle 2: "b 2" — only the new series speaks
	r.Observe("b", Value(2))
	r.MarkAbsent()

	a, b := r.Buffer("a"), r.Buffer("b")
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2, b.Len())
	assert.False(t, a.Samples()[1].Valid())
	assert.False(t, b.Samples()[0].Valid())
	assert.Equal(t, 2.0, b.Samples()[1].Float64())
}

func TestRegistryMarkAbsent(t *testing.T) {
	r := NewRegistry(10)
	// cycle 1: "a 1 b 2"
	r.Observe("a", Value(1))
	r.Observe("b", Value(2))
	r.MarkAbsent()
	// cycle 2: "a 3"
	r.Observe("a", Value(3))
	r.MarkAbsent()

	b := r.Buffer("b")
	require.Equal(t, 2, b.Len())
	assert.Equal(t, 2.0, b.Samples()[0].Float64())
	assert.False(t, b.Samples()[1].Valid())

	a := r.Buffer("a")
	require.Equal(t, 2, a.Len())
	assert.Equal(t, 3.0, a.Samples()[1].Float64())
}

func TestRegistryOrderDeterministic(t *testing.T) {
	names := func(r *Registry) []string {
		var out []string
		for _, b := range r.Buffers() {
			out = append(out, b.Name)
		}
		return out
	}

	r1 := NewRegistry(10)
	for _, n := range []string{"zz", "aa", "mm"} {
		r1.Observe(n, Value(1))
	}
	r2 := NewRegistry(10)
	for _, n := range []string{"mm", "zz", "aa"} {
		r2.Observe(n, Value(1))
	}
	assert.Equal(t, []string{"aa", "mm", "zz"}, names(r1))
	assert.Equal(t, names(r1), names(r2), "insertion order must not leak into iteration order")
}

func TestRegistryResize(t *testing.T) {
	r := NewRegistry(10)
	for i := 0; i < 5; i++ {
		r.Observe("a", Value(float64(i)))
	}
	r.Resize(3)
	b := r.Buffer("a")
	require.Equal(t, 3, b.Len())
	assert.Equal(t, 2.0, b.Samples()[0].Float64())
	assert.Equal(t, 4.0, b.Samples()[2].Float64())

	// pushes after the resize keep the narrower window
	r.Observe("a", Value(9))
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 9.0, b.Samples()[2].Float64())
}

func TestRegistryEnsure(t *testing.T) {
	r := NewRegistry(10)
	r.Bars = true
	b := r.Ensure("cpu")
	assert.Zero(t, b.Len(), "pre-created buffers hold no history")
	assert.True(t, b.Bars)
	assert.Same(t, b, r.Ensure("cpu"))

	r.Observe("other", Value(1))
	r.MarkAbsent()
	r.Observe("other", Value(2))
	r.MarkAbsent()
	r.Observe("cpu", Value(3))
	r.MarkAbsent()
	assert.Equal(t, r.Buffer("other").Len(), b.Len())
}

func TestRegistryResizeFloor(t *testing.T) {
	r := NewRegistry(10)
	r.Resize(-3)
	for i := 0; i < 20; i++ {
		r.Observe("a", Value(float64(i)))
	}
	b := r.Buffer("a")
	require.Equal(t, 1, b.Len(), "buffers stay bounded below the minimum terminal width")
	assert.Equal(t, 19.0, b.Samples()[0].Float64())
}
