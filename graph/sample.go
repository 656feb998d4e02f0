package graph

// Sample is a single observation of a series. The zero value is the
// sentinel meaning "not observed this cycle": it never participates in
// statistics or scaling, and it breaks line continuity when rendered.
type Sample struct {
	value float64
	valid bool
}

// Value returns a sample carrying the given observation.
func Value(v float64) Sample {
	return Sample{value: v, valid: true}
}

// None returns the sentinel sample.
func None() Sample {
	return Sample{}
}

// Valid reports whether the sample carries an observation.
func (s Sample) Valid() bool {
	return s.valid
}

// Float64 returns the observed value, or 0 for the sentinel.
func (s Sample) Float64() float64 {
	return s.value
}
