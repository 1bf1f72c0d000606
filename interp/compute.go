package interp

import (
	"github.com/cxxpxr/snapsync/mathx"
	"github.com/cxxpxr/snapsync/snapshot"
)

// Compute advances state by deltaTime against buf and returns the
// interpolated (or extrapolated) pose for this tick, or false if there is
// nothing to output yet. It proceeds in fixed steps:
//
//	A. bootstrap RemoteTime from the buffer's oldest entry if unset.
//	B. advance RemoteTime by deltaTime.
//	C. bail out until the buffer has warmed up to two entries.
//	D. bail out until the second-oldest entry is older than the
//	   buffering window (RemoteTime - bufferTime).
//	E. advance InterpolationTime by deltaTime.
//	F. if InterpolationTime has overtaken the current pair's duration and
//	   a third snapshot is buffered, retire the oldest entry and carry the
//	   fractional overshoot into the new pair. With only two snapshots
//	   buffered, fall through into extrapolation instead (retiring more
//	   than one entry per call is deliberately not attempted).
//	G. compute the interpolation parameter, which may exceed [0,1].
//	H. return the interpolated/extrapolated snapshot.
//
// Compute never allocates and mutates buf only in step F, at most once.
// RemoteTime never rewinds; the only way to un-bootstrap is State.Reset.
func Compute(buf *snapshot.Buffer, state *State, bufferTime, deltaTime float64) (snapshot.Snapshot, bool) {
	// A. bootstrap.
	if !state.Bootstrapped() {
		if buf.Len() == 0 {
			return snapshot.Snapshot{}, false
		}
		state.RemoteTime = buf.First().Timestamp
	}

	// B. advance clock.
	state.RemoteTime += deltaTime

	// C. warm-up check.
	if buf.Len() < 2 {
		return snapshot.Snapshot{}, false
	}

	first, second := buf.First(), buf.Second()

	// D. readiness check: second must already be older than the buffering
	// window so a couple more late arrivals still have time to show up.
	if second.Timestamp > state.RemoteTime-bufferTime {
		return snapshot.Snapshot{}, false
	}

	// E. advance interpolation clock.
	state.InterpolationTime += deltaTime
	delta := second.Timestamp - first.Timestamp

	// F. overshoot handling.
	if state.InterpolationTime >= delta {
		if buf.Len() >= 3 {
			buf.RetireOldest()
			state.InterpolationTime -= delta
			first, second = buf.First(), buf.Second()
			delta = second.Timestamp - first.Timestamp
		}
		// else: only two snapshots buffered, extrapolate past `second`.
	}

	// G. parameter, possibly > 1 when extrapolating.
	t := mathx.InverseLerpUnclamped(first.Timestamp, second.Timestamp, first.Timestamp+state.InterpolationTime)

	// H. result.
	return snapshot.Interpolate(first, second, t), true
}
