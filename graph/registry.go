package graph

import "sort"

// Registry maps series names to buffers and keeps every buffer the same
// length, so columns line up across series created at different times.
// Iteration is lexicographic by name; that order drives draw order,
// color assignment and the stacking position in the detail panel.
type Registry struct {
	// Bars is the render mode given to buffers created from now on.
	Bars bool

	width   int
	maxLen  int
	target  int
	buffers map[string]*Buffer
	order   []string
	touched map[string]bool
}

// NewRegistry creates an empty registry whose buffers hold at most
// width samples.
func NewRegistry(width int) *Registry {
	if width < 1 {
		width = 1
	}
	return &Registry{
		width:   width,
		buffers: make(map[string]*Buffer),
		touched: make(map[string]bool),
	}
}

// Observe routes one sample to the named buffer, creating the buffer on
// first sight. A new or shorter buffer is first backfilled with
// sentinels so the sample lands in the cycle's column.
func (r *Registry) Observe(name string, s Sample) *Buffer {
	b := r.Ensure(name)
	b.fill(r.cycleTarget() - 1)
	b.Push(s, r.width)
	if b.Len() > r.maxLen {
		r.maxLen = b.Len()
	}
	r.touched[name] = true
	return b
}

// cycleTarget returns the length every buffer must reach by the end of
// the current cycle. It is fixed at the cycle's first observation, so
// the order series appear on a line cannot skew column alignment.
func (r *Registry) cycleTarget() int {
	if r.target == 0 {
		r.target = r.maxLen + 1
		if r.target > r.width {
			r.target = r.width
		}
	}
	return r.target
}

// Ensure returns the named buffer, creating an empty one if absent.
func (r *Registry) Ensure(name string) *Buffer {
	b, ok := r.buffers[name]
	if !ok {
		b = NewBuffer(name)
		b.Bars = r.Bars
		r.buffers[name] = b
		r.order = append(r.order, name)
		sort.Strings(r.order)
	}
	return b
}

// MarkAbsent pushes a sentinel into every buffer not observed since the
// last call, so silent series advance in lockstep with active ones.
// It ends the current cycle.
func (r *Registry) MarkAbsent() {
	target := r.cycleTarget()
	for name, b := range r.buffers {
		if r.touched[name] {
			continue
		}
		b.fill(target - 1)
		b.Push(None(), r.width)
		if b.Len() > r.maxLen {
			r.maxLen = b.Len()
		}
	}
	r.touched = make(map[string]bool)
	r.target = 0
}

// Buffers returns all buffers in lexicographic name order.
func (r *Registry) Buffers() []*Buffer {
	out := make([]*Buffer, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.buffers[name])
	}
	return out
}

// Buffer returns the named buffer, or nil.
func (r *Registry) Buffer(name string) *Buffer {
	return r.buffers[name]
}

// Len returns the number of registered series.
func (r *Registry) Len() int {
	return len(r.order)
}

// Resize changes the window capacity, dropping the oldest samples of
// every buffer that no longer fits. The capacity never drops below one
// sample, so buffers stay bounded while the terminal is too narrow to
// plot.
func (r *Registry) Resize(width int) {
	if width < 1 {
		width = 1
	}
	r.width = width
	for _, b := range r.buffers {
		b.trim(width)
	}
	if r.maxLen > width {
		r.maxLen = width
	}
	if r.target > width {
		r.target = width
	}
}
