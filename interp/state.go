// Package interp implements the pure per-tick interpolation state advance:
// given a snapshot buffer and a small owned accumulator struct, it
// produces either an interpolated/extrapolated pose or a "not ready yet"
// signal.
package interp

// State is the pair of accumulators Compute advances each tick, owned by
// value rather than passed around as mutable by-reference floats: the
// driver carries one State per direction per entity and hands a pointer
// into Compute.
type State struct {
	// RemoteTime is the current simulated time in the sender's clock,
	// advanced locally by delta_time once seeded from the first buffered
	// snapshot. Zero is the sentinel for "uninitialized".
	RemoteTime float64
	// InterpolationTime is the elapsed seconds within the current
	// [first, second] pair. It is decremented by (second.Timestamp -
	// first.Timestamp) whenever that pair is retired, never zeroed
	// outright, so a large overshoot's fractional remainder survives
	// into the next pair instead of causing a visible jitter.
	InterpolationTime float64
}

// Reset returns the state to its just-constructed, uninitialized form.
// Called by Driver.Reset alongside clearing the associated buffer.
func (s *State) Reset() {
	s.RemoteTime = 0
	s.InterpolationTime = 0
}

// Bootstrapped reports whether RemoteTime has been seeded from a first
// received snapshot. The zero value is unbootstrapped by construction.
func (s *State) Bootstrapped() bool {
	return s.RemoteTime != 0
}
