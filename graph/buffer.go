package graph

import "sort"

// Buffer is the bounded, time-aligned window of samples for one named
// series, plus the statistics recomputed every cycle by Update.
type Buffer struct {
	Name  string
	Glyph rune
	Bars  bool

	samples []Sample

	// previous raw counter reading, only meaningful in rate mode
	prevRaw float64
	hasPrev bool

	Min    float64
	Max    float64
	Avg    float64
	Median float64
}

// NewBuffer creates a buffer for the named series. The default glyph is
// the first character of the name.
func NewBuffer(name string) *Buffer {
	b := &Buffer{Name: name}
	for _, r := range name {
		b.Glyph = r
		break
	}
	return b
}

// Len returns the number of buffered samples, sentinels included.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Samples returns the buffered window, oldest first.
func (b *Buffer) Samples() []Sample {
	return b.samples
}

// Push appends one sample and evicts the oldest while the window
// exceeds width.
func (b *Buffer) Push(s Sample, width int) {
	b.samples = append(b.samples, s)
	if width > 0 && len(b.samples) > width {
		b.samples = b.samples[len(b.samples)-width:]
	}
}

// fill right-pads the window with sentinels up to n samples, so that a
// series created after others already have history stays column-aligned.
func (b *Buffer) fill(n int) {
	for len(b.samples) < n {
		b.samples = append(b.samples, None())
	}
}

// trim drops the oldest samples until the window fits width.
func (b *Buffer) trim(width int) {
	if width > 0 && len(b.samples) > width {
		b.samples = b.samples[len(b.samples)-width:]
	}
}

// Update recomputes min, max, avg and median over the non-sentinel
// samples. All four are 0 when nothing valid is buffered.
func (b *Buffer) Update() {
	vals := make([]float64, 0, len(b.samples))
	var tot float64
	for _, s := range b.samples {
		if !s.valid {
			continue
		}
		vals = append(vals, s.value)
		tot += s.value
	}
	if len(vals) == 0 {
		b.Min, b.Max, b.Avg, b.Median = 0, 0, 0, 0
		return
	}
	sort.Float64s(vals)
	b.Min = vals[0]
	b.Max = vals[len(vals)-1]
	b.Avg = tot / float64(len(vals))
	// upper-middle element for even counts
	b.Median = vals[len(vals)/2]
}

// LastValid returns the most recent non-sentinel sample, or 0 if none.
func (b *Buffer) LastValid() float64 {
	for i := len(b.samples) - 1; i >= 0; i-- {
		if b.samples[i].valid {
			return b.samples[i].value
		}
	}
	return 0
}
