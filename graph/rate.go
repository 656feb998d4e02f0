package graph

const (
	wrap32 = float64(1 << 32)
	wrap31 = float64(1 << 31)

	// a reading this close below a counter boundary, followed by a
	// reading under the same margin, is taken as a wraparound
	wrapMargin = 256
)

// ApplyRate replaces the newest sample with the per-second rate of
// change since the previous raw reading. The very first reading of a
// series yields 0 and only records the raw value. An apparent decrease
// right below the 32-bit or 31-bit counter boundary is corrected as a
// wraparound; a genuine decrease is surfaced as a negative rate, not
// clamped.
func (b *Buffer) ApplyRate(intervalSeconds float64) {
	if len(b.samples) == 0 {
		return
	}
	last := &b.samples[len(b.samples)-1]
	if !last.valid {
		return
	}
	cur := last.value
	if !b.hasPrev {
		b.prevRaw = cur
		b.hasPrev = true
		last.value = 0
		return
	}
	if intervalSeconds <= 0 {
		intervalSeconds = 1
	}
	delta := cur - b.prevRaw
	if cur >= 0 && cur < wrapMargin {
		switch {
		case b.prevRaw >= wrap32-wrapMargin && b.prevRaw < wrap32:
			delta = cur + (wrap32 - b.prevRaw)
		case b.prevRaw >= wrap31-wrapMargin && b.prevRaw < wrap31:
			delta = cur + (wrap31 - b.prevRaw)
		}
	}
	last.value = delta / intervalSeconds
	b.prevRaw = cur
}
