// Package ecsbridge binds transformsync.Driver to a real donburi
// component instead of leaving "apply to the local pose" an abstract
// operation.
package ecsbridge

import (
	"github.com/cxxpxr/snapsync/transformsync"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// TransformData is the local-space pose donburi stores per entity.
// "Local" is deliberate: a networked entity parented under
// a VR rig or a moving platform is driven in the parent's space, and this
// component never performs world-space math on the caller's behalf.
type TransformData struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Transform is the donburi component type, following the same
// package-level var pattern donburi components use throughout this module.
var Transform = donburi.NewComponentType[TransformData](TransformData{
	Rotation: mgl32.QuatIdent(),
	Scale:    mgl32.Vec3{1, 1, 1},
})

// EntryPose adapts a donburi entry holding a Transform component to
// transformsync.LocalPose.
type EntryPose struct {
	Entry *donburi.Entry
}

func (p EntryPose) Pose() transformsync.SnapshotTransform {
	t := Transform.Get(p.Entry)
	return transformsync.SnapshotTransform{
		Position: t.Position,
		Rotation: t.Rotation,
		Scale:    t.Scale,
	}
}

func (p EntryPose) SetPose(pose transformsync.SnapshotTransform) {
	t := Transform.Get(p.Entry)
	t.Position = pose.Position
	t.Rotation = pose.Rotation
	t.Scale = pose.Scale
}
