package interp

import (
	"math"
	"testing"

	"github.com/cxxpxr/snapsync/snapshot"
	"github.com/go-gl/mathgl/mgl32"
)

func snap(tstamp float64, pos, scale float32, rotDeg float32) snapshot.Snapshot {
	return snapshot.Snapshot{
		Timestamp: tstamp,
		Position:  mgl32.Vec3{pos, pos, pos},
		Rotation:  mgl32.QuatRotate(mgl32.DegToRad(rotDeg), mgl32.Vec3{0, 1, 0}),
		Scale:     mgl32.Vec3{scale, scale, scale},
	}
}

func yDegrees(q mgl32.Quat) float64 {
	w := math.Max(-1, math.Min(1, float64(q.W)))
	angle := 2 * math.Acos(w) * 180 / math.Pi
	if q.V.Y() < 0 {
		angle = -angle
	}
	return angle
}

func approxVec(v mgl32.Vec3, want float32) bool {
	const eps = 1e-4
	return math.Abs(float64(v[0]-want)) < eps && math.Abs(float64(v[1]-want)) < eps && math.Abs(float64(v[2]-want)) < eps
}

// TestS1DefaultDoesNothing is scenario S1.
func TestS1DefaultDoesNothing(t *testing.T) {
	var buf snapshot.Buffer
	var state State

	_, ok := Compute(&buf, &state, 0, 0)
	if ok {
		t.Fatal("expected no output")
	}
	if state.RemoteTime != 0 || state.InterpolationTime != 0 || buf.Len() != 0 {
		t.Fatalf("state = %+v, buf.Len() = %d, want zeroed/empty", state, buf.Len())
	}
}

// TestS2FirstSnapshotInitializesRemoteTime is scenario S2.
func TestS2FirstSnapshotInitializesRemoteTime(t *testing.T) {
	var buf snapshot.Buffer
	buf.InsertIfNewEnough(snapshot.Snapshot{Timestamp: 1})
	var state State

	_, ok := Compute(&buf, &state, 0, 0.5)
	if ok {
		t.Fatal("expected no output during warm-up")
	}
	if state.RemoteTime != 1.5 {
		t.Fatalf("RemoteTime = %v, want 1.5", state.RemoteTime)
	}
	if state.InterpolationTime != 0 {
		t.Fatalf("InterpolationTime = %v, want 0", state.InterpolationTime)
	}
	if buf.Len() != 1 {
		t.Fatalf("buf.Len() = %d, want 1", buf.Len())
	}
}

// TestS3WaitsUntilBufferWindowElapses is scenario S3.
func TestS3WaitsUntilBufferWindowElapses(t *testing.T) {
	var buf snapshot.Buffer
	buf.InsertIfNewEnough(snapshot.Snapshot{Timestamp: 0.1})
	buf.InsertIfNewEnough(snapshot.Snapshot{Timestamp: 1.1})
	state := State{RemoteTime: 2.5}

	_, ok := Compute(&buf, &state, 2, 0.5)
	if ok {
		t.Fatal("expected no output while second entry is within the buffer window")
	}
	if state.RemoteTime != 3.0 {
		t.Fatalf("RemoteTime = %v, want 3.0", state.RemoteTime)
	}
	if state.InterpolationTime != 0 {
		t.Fatalf("InterpolationTime = %v, want 0 (readiness gate returns before step E)", state.InterpolationTime)
	}
}

// TestS4InterpolationAtMidpoint is scenario S4.
func TestS4InterpolationAtMidpoint(t *testing.T) {
	var buf snapshot.Buffer
	buf.InsertIfNewEnough(snap(0, 1, 3, 0))
	buf.InsertIfNewEnough(snap(1, 2, 4, 60))
	state := State{RemoteTime: 2.5, InterpolationTime: 0}

	result, ok := Compute(&buf, &state, 2, 0.5)
	if !ok {
		t.Fatal("expected an interpolated result")
	}
	if state.RemoteTime != 3.0 {
		t.Fatalf("RemoteTime = %v, want 3.0", state.RemoteTime)
	}
	if math.Abs(state.InterpolationTime-0.5) > 1e-9 {
		t.Fatalf("InterpolationTime = %v, want 0.5", state.InterpolationTime)
	}
	if buf.Len() != 2 {
		t.Fatalf("buf.Len() = %d, want 2 (no retirement yet)", buf.Len())
	}
	if !approxVec(result.Position, 1.5) {
		t.Fatalf("Position = %v, want (1.5,1.5,1.5)", result.Position)
	}
	if gotDeg := yDegrees(result.Rotation); math.Abs(gotDeg-30) > 0.5 {
		t.Fatalf("Rotation = %.2fdeg, want ~30deg", gotDeg)
	}
	if !approxVec(result.Scale, 3.5) {
		t.Fatalf("Scale = %v, want (3.5,3.5,3.5)", result.Scale)
	}
}

// TestS5ExtrapolationWithoutMoreSnapshots is scenario S5.
func TestS5ExtrapolationWithoutMoreSnapshots(t *testing.T) {
	var buf snapshot.Buffer
	buf.InsertIfNewEnough(snap(0, 1, 3, 0))
	buf.InsertIfNewEnough(snap(1, 2, 4, 60))
	state := State{RemoteTime: 2.5, InterpolationTime: 1}

	result, ok := Compute(&buf, &state, 2, 0.5)
	if !ok {
		t.Fatal("expected an extrapolated result")
	}
	if state.RemoteTime != 3.0 {
		t.Fatalf("RemoteTime = %v, want 3.0", state.RemoteTime)
	}
	if math.Abs(state.InterpolationTime-1.5) > 1e-9 {
		t.Fatalf("InterpolationTime = %v, want 1.5", state.InterpolationTime)
	}
	if buf.Len() != 2 {
		t.Fatalf("buf.Len() = %d, want 2 (only two snapshots available, no retirement)", buf.Len())
	}
	if !approxVec(result.Position, 2.5) {
		t.Fatalf("Position = %v, want (2.5,2.5,2.5)", result.Position)
	}
	if gotDeg := yDegrees(result.Rotation); math.Abs(gotDeg-90) > 0.5 {
		t.Fatalf("Rotation = %.2fdeg, want ~90deg (slerp extrapolation, not ~86deg lerp)", gotDeg)
	}
	if !approxVec(result.Scale, 4.5) {
		t.Fatalf("Scale = %v, want (4.5,4.5,4.5)", result.Scale)
	}
}

// TestS6RetirementOnOvershootWithThirdSnapshot is scenario S6.
func TestS6RetirementOnOvershootWithThirdSnapshot(t *testing.T) {
	var buf snapshot.Buffer
	buf.InsertIfNewEnough(snap(0, 1, 3, 0))
	buf.InsertIfNewEnough(snap(1, 2, 4, 60))
	buf.InsertIfNewEnough(snap(2, 4, 6, 120))
	state := State{RemoteTime: 2.5, InterpolationTime: 1}

	result, ok := Compute(&buf, &state, 2, 0.5)
	if !ok {
		t.Fatal("expected an interpolated result")
	}
	if state.RemoteTime != 3.0 {
		t.Fatalf("RemoteTime = %v, want 3.0", state.RemoteTime)
	}
	if math.Abs(state.InterpolationTime-0.5) > 1e-9 {
		t.Fatalf("InterpolationTime = %v, want 0.5 (overshoot fraction preserved)", state.InterpolationTime)
	}
	if buf.Len() != 2 {
		t.Fatalf("buf.Len() = %d, want 2 (oldest retired)", buf.Len())
	}
	if buf.First().Timestamp != 1 {
		t.Fatalf("buf.First().Timestamp = %v, want 1", buf.First().Timestamp)
	}
	if !approxVec(result.Position, 3) {
		t.Fatalf("Position = %v, want (3,3,3)", result.Position)
	}
	if gotDeg := yDegrees(result.Rotation); math.Abs(gotDeg-90) > 0.5 {
		t.Fatalf("Rotation = %.2fdeg, want ~90deg", gotDeg)
	}
	if !approxVec(result.Scale, 5) {
		t.Fatalf("Scale = %v, want (5,5,5)", result.Scale)
	}
}

// TestBootstrapWithEmptyBuffer covers property 6: compute on an empty
// buffer never advances RemoteTime past its sentinel.
func TestBootstrapWithEmptyBuffer(t *testing.T) {
	var buf snapshot.Buffer
	var state State

	_, ok := Compute(&buf, &state, 1, 1)
	if ok {
		t.Fatal("expected no output")
	}
	if state.RemoteTime != 0 {
		t.Fatalf("RemoteTime = %v, want 0", state.RemoteTime)
	}
}

// TestReadinessGate covers property 8: no output while the second-oldest
// entry is still within the buffering window.
func TestReadinessGate(t *testing.T) {
	var buf snapshot.Buffer
	buf.InsertIfNewEnough(snapshot.Snapshot{Timestamp: 0})
	buf.InsertIfNewEnough(snapshot.Snapshot{Timestamp: 10})
	state := State{RemoteTime: 10}

	_, ok := Compute(&buf, &state, 5, 0.1)
	if ok {
		t.Fatal("expected no output: second entry (ts=10) is newer than RemoteTime - bufferTime")
	}
}

// TestZeroDeltaIsANoop checks that a zero delta_time pass is legal and
// leaves RemoteTime untouched once bootstrapped.
func TestZeroDeltaIsANoop(t *testing.T) {
	var buf snapshot.Buffer
	buf.InsertIfNewEnough(snapshot.Snapshot{Timestamp: 5})
	state := State{RemoteTime: 10}

	Compute(&buf, &state, 0, 0)
	if state.RemoteTime != 10 {
		t.Fatalf("RemoteTime = %v, want unchanged 10", state.RemoteTime)
	}
}

// TestResetPurity covers property 10: after Reset, both accumulators are
// zero and the next Compute call behaves as if freshly constructed.
func TestResetPurity(t *testing.T) {
	var buf snapshot.Buffer
	buf.InsertIfNewEnough(snap(0, 1, 1, 0))
	buf.InsertIfNewEnough(snap(1, 2, 2, 60))
	state := State{RemoteTime: 2.5, InterpolationTime: 0}
	Compute(&buf, &state, 2, 0.5)

	state.Reset()
	buf.Reset()

	if state.RemoteTime != 0 || state.InterpolationTime != 0 {
		t.Fatalf("state after Reset = %+v, want zeroed", state)
	}
	if buf.Len() != 0 {
		t.Fatalf("buf.Len() = %d after Reset, want 0", buf.Len())
	}

	buf.InsertIfNewEnough(snapshot.Snapshot{Timestamp: 3})
	_, ok := Compute(&buf, &state, 0, 0.25)
	if ok {
		t.Fatal("expected no output on the first call after reset (warm-up)")
	}
	if state.RemoteTime != 3.25 {
		t.Fatalf("RemoteTime = %v, want 3.25 (re-bootstrapped from the new buffer)", state.RemoteTime)
	}
}
