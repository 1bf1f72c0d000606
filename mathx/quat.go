package mathx

import "github.com/go-gl/mathgl/mgl32"

// SlerpUnclamped spherically interpolates from q0 to q1. Unlike a linear
// quaternion blend, this extrapolates correctly for t > 1 and t < 0: a
// 0deg->60deg rotation at t=1.5 yields 90deg, not the ~86deg a naive lerp
// would give. mgl32.QuatSlerp already computes the angle between q0 and q1
// once and scales it by t rather than clamping t, so it extrapolates for
// free — this wrapper exists to make that guarantee explicit and to pin the
// float64 timestamp-domain t down to the float32 the quaternion math uses.
func SlerpUnclamped(q0, q1 mgl32.Quat, t float64) mgl32.Quat {
	return mgl32.QuatSlerp(q0, q1, float32(t))
}
