package transformsync

import (
	"github.com/cxxpxr/snapsync/interp"
	"github.com/cxxpxr/snapsync/snapshot"
)

// Driver is the per-entity state machine: two independent
// buffer/accumulator pairs (one per direction), the authority
// configuration, and the send-rate-limiting scheduler for whichever
// direction the local node is responsible for producing.
//
// The two directions never share state beyond the pure Compute kernel:
// clientBuffer/clientState hold snapshots the server has received from
// an authoritative client, serverBuffer/serverState hold snapshots a
// client has received from the authoritative server.
type Driver struct {
	Config Config
	Pose   LocalPose

	// IsServer is true when this Driver instance runs on the process
	// acting as the authoritative server for the session.
	IsServer bool
	// IsClient is true when this Driver instance also runs client-side
	// logic. In host mode (server and client in one process) both
	// IsServer and IsClient are true, but the client tick only ever
	// runs when IsClient is true AND IsServer is false — see OnTick.
	IsClient bool
	// IsLocalPlayer marks that this entity is the one the local client
	// controls (and therefore, if client-authoritative, sends rather
	// than interpolates).
	IsLocalPlayer bool

	clientBuffer snapshot.Buffer
	clientState  interp.State

	serverBuffer snapshot.Buffer
	serverState  interp.State

	serverSend Scheduler
	clientSend Scheduler
}

// NewDriver constructs a Driver for one entity. pose is the local-space
// transform the driver reads from (to build outbound snapshots) and
// writes to (when applying an interpolated/extrapolated result).
func NewDriver(cfg Config, pose LocalPose, isServer, isClient, isLocalPlayer bool) *Driver {
	return &Driver{
		Config:        cfg,
		Pose:          pose,
		IsServer:      isServer,
		IsClient:      isClient,
		IsLocalPlayer: isLocalPlayer,
	}
}

// OnTick drives one simulation step. deltaTime feeds the interpolation
// kernel; localTime is compared against the scheduler's last-send marks
// in the local clock domain — outbound snapshots carry no timestamp of
// their own.
func (d *Driver) OnTick(localTime, deltaTime float64, sendToClients, sendToServer SendFunc) error {
	switch {
	case d.IsServer:
		return d.serverTick(localTime, deltaTime, sendToClients)
	case d.IsClient:
		return d.clientTick(localTime, deltaTime, sendToServer)
	default:
		return nil
	}
}

func (d *Driver) serverTick(localTime, deltaTime float64, sendToClients SendFunc) error {
	if sendToClients != nil {
		if _, err := d.serverSend.MaybeSend(localTime, d.Config.SendInterval, d.Pose.Pose(), d.Config.Channel, sendToClients); err != nil {
			return err
		}
	}

	if d.Config.Authority() != ClientAuthoritative || d.IsLocalPlayer {
		return nil
	}

	result, ok := interp.Compute(&d.clientBuffer, &d.clientState, d.Config.BufferTime(), deltaTime)
	if ok {
		d.Pose.SetPose(SnapshotTransform{Position: result.Position, Rotation: result.Rotation, Scale: result.Scale})
	}
	return nil
}

func (d *Driver) clientTick(localTime, deltaTime float64, sendToServer SendFunc) error {
	if d.Config.Authority() == ClientAuthoritative && d.IsLocalPlayer {
		if sendToServer == nil {
			return nil
		}
		_, err := d.clientSend.MaybeSend(localTime, d.Config.SendInterval, d.Pose.Pose(), d.Config.Channel, sendToServer)
		return err
	}

	result, ok := interp.Compute(&d.serverBuffer, &d.serverState, d.Config.BufferTime(), deltaTime)
	if ok {
		d.Pose.SetPose(SnapshotTransform{Position: result.Position, Rotation: result.Rotation, Scale: result.Scale})
	}
	return nil
}

// OnReceived routes an inbound snapshot to the direction-appropriate
// buffer. remoteTS is the sender's clock reading for this message,
// reconstructed by the caller from the transport's batch timestamp —
// this method never touches wall-clock time itself.
//
// fromServer distinguishes which buffer to admit into. When this Driver
// is also the server (host mode), a fromServer receipt is the server's
// own broadcast looping back through the local transport and must be
// dropped, or the client-side buffer on the host would grow without
// bound.
func (d *Driver) OnReceived(remoteTS float64, transform SnapshotTransform, fromServer bool) {
	if d.IsServer && fromServer {
		return
	}

	snap := snapshot.Snapshot{
		Timestamp: remoteTS,
		Position:  transform.Position,
		Rotation:  transform.Rotation,
		Scale:     transform.Scale,
	}

	if fromServer {
		d.serverBuffer.InsertIfNewEnough(snap)
	} else {
		d.clientBuffer.InsertIfNewEnough(snap)
	}
}

// Reset clears both buffers, zeros both accumulators, and rearms both
// send schedulers, as if the entity had just been (re)enabled.
func (d *Driver) Reset() {
	d.clientBuffer.Reset()
	d.clientState.Reset()
	d.serverBuffer.Reset()
	d.serverState.Reset()
	d.serverSend.Reset()
	d.clientSend.Reset()
}
