package transformsync

// SendFunc dispatches a snapshot to the transport on the given channel.
// The transport is responsible for attaching whatever remote timestamp
// the receiver will later read back via a RemoteTimeSource.
type SendFunc func(pose SnapshotTransform, channel ChannelID) error

// Scheduler rate-limits outbound snapshots for one entity: it produces a
// new SnapshotTransform from the local pose only once local_time has
// advanced past last_send + send_interval, mirroring a
// resend-on-interval pattern (lastSendTime + fixed interval, resend on
// timeout) rather than a dirty-flag push.
type Scheduler struct {
	lastSend float64
	sent     bool
}

// MaybeSend calls send with the current local pose if localTime has
// advanced far enough past the last send, and advances the internal
// clock. It reports whether a snapshot was actually sent.
//
// The very first call always sends (there is no prior lastSend to compare
// against) rather than waiting a full interval before the first packet.
func (s *Scheduler) MaybeSend(localTime float64, sendInterval float32, pose SnapshotTransform, channel ChannelID, send SendFunc) (bool, error) {
	if s.sent && localTime < s.lastSend+float64(sendInterval) {
		return false, nil
	}
	if err := send(pose, channel); err != nil {
		return false, err
	}
	s.lastSend = localTime
	s.sent = true
	return true, nil
}

// Reset clears the scheduler's rate-limit state so the next MaybeSend
// call sends unconditionally, as if newly constructed.
func (s *Scheduler) Reset() {
	s.lastSend = 0
	s.sent = false
}
