package transformsync

import "github.com/go-gl/mathgl/mgl32"

// SnapshotTransform is the local-space pose a scheduler sends and a
// driver receives. It carries no timestamp: the receive path reconstructs
// one from the transport's per-message remote time, since batching many
// entities' snapshots under one wire-level timestamp saves bandwidth.
type SnapshotTransform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// LocalPose is the minimal read/write surface the driver needs on
// whatever holds an entity's authoritative or interpolated transform.
// ecsbridge.EntryPose implements this against a donburi component; tests
// use a plain struct.
type LocalPose interface {
	Pose() SnapshotTransform
	SetPose(SnapshotTransform)
}
