package transport

import (
	"testing"

	"github.com/cxxpxr/snapsync/transformsync"
	"github.com/go-gl/mathgl/mgl32"
)

func TestEncodeDecodeBatchRoundTrip(t *testing.T) {
	want := PoseBatch{
		SentAt: 12.5,
		Updates: []PoseUpdate{
			{EntityID: 1, Pose: transformsync.SnapshotTransform{
				Position: mgl32.Vec3{1, 2, 3},
				Rotation: mgl32.QuatIdent(),
				Scale:    mgl32.Vec3{1, 1, 1},
			}},
			{EntityID: 2, Pose: transformsync.SnapshotTransform{
				Position: mgl32.Vec3{-4, 0, 8.5},
				Rotation: mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}),
				Scale:    mgl32.Vec3{2, 2, 2},
			}},
		},
	}

	data, err := EncodeBatch(want)
	if err != nil {
		t.Fatalf("EncodeBatch: %v", err)
	}

	got, err := DecodeBatch(data)
	if err != nil {
		t.Fatalf("DecodeBatch: %v", err)
	}

	if got.SentAt != want.SentAt {
		t.Fatalf("SentAt = %v, want %v", got.SentAt, want.SentAt)
	}
	if len(got.Updates) != len(want.Updates) {
		t.Fatalf("len(Updates) = %d, want %d", len(got.Updates), len(want.Updates))
	}
	for i := range want.Updates {
		if got.Updates[i].EntityID != want.Updates[i].EntityID {
			t.Fatalf("Updates[%d].EntityID = %v, want %v", i, got.Updates[i].EntityID, want.Updates[i].EntityID)
		}
		if !got.Updates[i].Pose.Position.ApproxEqual(want.Updates[i].Pose.Position) {
			t.Fatalf("Updates[%d].Pose.Position = %v, want %v", i, got.Updates[i].Pose.Position, want.Updates[i].Pose.Position)
		}
	}
}
