// Package snapshot holds the timestamped pose value type and the
// ACB-safe, time-ordered buffer that feeds the interpolation kernel in
// package interp.
package snapshot

import (
	"github.com/cxxpxr/snapsync/mathx"
	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot is an immutable, timestamped pose in the sender's clock domain.
// Timestamp is seconds since the sender's chosen epoch. Rotation must be a
// unit quaternion; producers are responsible for normalizing it before it
// reaches this package.
type Snapshot struct {
	Timestamp float64
	Position  mgl32.Vec3
	Rotation  mgl32.Quat
	Scale     mgl32.Vec3
}

// Interpolate blends from and to at parameter t. It never clamps t: values
// outside [0,1] extrapolate, which is exactly what the interpolation
// kernel needs when it runs out of buffered snapshots (spec §4.4 step G).
func Interpolate(from, to Snapshot, t float64) Snapshot {
	return Snapshot{
		Timestamp: mathx.LerpUnclamped(from.Timestamp, to.Timestamp, t),
		Position:  mathx.Vec3LerpUnclamped(from.Position, to.Position, t),
		Rotation:  mathx.SlerpUnclamped(from.Rotation, to.Rotation, t),
		Scale:     mathx.Vec3LerpUnclamped(from.Scale, to.Scale, t),
	}
}
