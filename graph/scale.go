package graph

// Limit is an optional bound on the vertical scale.
type Limit struct {
	Value float64
	Set   bool
}

// Bounds carries the configured soft and hard limits. Soft limits only
// widen the computed range; hard limits override it unconditionally and
// define the error-marker thresholds.
type Bounds struct {
	SoftMin Limit
	SoftMax Limit
	HardMin Limit
	HardMax Limit
}

// Normalize applies the configuration-time fixups: the soft maximum is
// forced above a configured hard minimum so the range cannot collapse,
// and a hard maximum not above the hard minimum is discarded.
func (b *Bounds) Normalize() {
	if b.HardMin.Set && (!b.SoftMax.Set || b.SoftMax.Value <= b.HardMin.Value) {
		b.SoftMax = Limit{Value: b.HardMin.Value + 1, Set: true}
	}
	if b.HardMax.Set && b.HardMin.Set && b.HardMax.Value <= b.HardMin.Value {
		b.HardMax = Limit{}
	}
}

// Scale is the shared vertical range of one render cycle.
type Scale struct {
	Min float64
	Max float64
}

// Resolve derives the global range from the union of all buffers'
// statistics, widened by soft bounds and overridden by hard bounds.
// Buffers must have been updated this cycle.
func Resolve(buffers []*Buffer, bounds Bounds) Scale {
	var sc Scale
	first := true
	for _, b := range buffers {
		if !b.hasValid() {
			continue
		}
		if first {
			sc.Min, sc.Max = b.Min, b.Max
			first = false
			continue
		}
		if b.Min < sc.Min {
			sc.Min = b.Min
		}
		if b.Max > sc.Max {
			sc.Max = b.Max
		}
	}
	if bounds.SoftMax.Set && sc.Max < bounds.SoftMax.Value {
		sc.Max = bounds.SoftMax.Value
	}
	if bounds.HardMax.Set {
		sc.Max = bounds.HardMax.Value
	}
	if bounds.SoftMin.Set && sc.Min > bounds.SoftMin.Value {
		sc.Min = bounds.SoftMin.Value
	}
	if bounds.HardMin.Set {
		sc.Min = bounds.HardMin.Value
	}
	return sc
}

func (b *Buffer) hasValid() bool {
	for _, s := range b.samples {
		if s.valid {
			return true
		}
	}
	return false
}
