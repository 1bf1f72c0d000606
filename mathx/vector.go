// Package mathx provides the unclamped scalar, vector, and quaternion
// interpolation primitives the snapshot interpolation engine is built on.
// Nothing here clamps its inputs to [0,1]: callers rely on that to
// extrapolate past the last received snapshot (see snapshot.Interpolate).
package mathx

import "github.com/go-gl/mathgl/mgl32"

// LerpUnclamped returns a + (b-a)*t. t outside [0,1] extrapolates.
func LerpUnclamped(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerpUnclamped returns the t such that LerpUnclamped(a, b, t) == v.
// Undefined when a == b; callers must guarantee a < b (buffer invariant).
func InverseLerpUnclamped(a, b, v float64) float64 {
	return (v - a) / (b - a)
}

// Vec3LerpUnclamped interpolates each component of a and b independently.
// t outside [0,1] extrapolates past b (or before a).
func Vec3LerpUnclamped(a, b mgl32.Vec3, t float64) mgl32.Vec3 {
	tf := float32(t)
	return mgl32.Vec3{
		a[0] + (b[0]-a[0])*tf,
		a[1] + (b[1]-a[1])*tf,
		a[2] + (b[2]-a[2])*tf,
	}
}
