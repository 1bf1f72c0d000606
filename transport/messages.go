package transport

import "github.com/cxxpxr/snapsync/transformsync"

// PoseUpdate is a single entity's outbound pose, keyed by whatever ID the
// caller's entity framework assigns (ecsbridge or otherwise). It carries
// no timestamp of its own — see RemoteTimeSource.
type PoseUpdate struct {
	EntityID uint64
	Pose     transformsync.SnapshotTransform
}

// PoseBatch is the wire message the scheduler's SendFunc ultimately
// produces and the router dispatches to `router.On` handlers: every pose
// in Updates shares one sender-clock timestamp, saving bandwidth when
// many entities' snapshots go out together. SentAt is filled in by the
// sender from its own local clock before serialization.
type PoseBatch struct {
	SentAt  float64
	Updates []PoseUpdate
}
