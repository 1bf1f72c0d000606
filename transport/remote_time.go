// Package transport wires the engine to a real underlying messaging
// transport: a necs router/websocket connection and a msgpack wire codec,
// instead of leaving "how do received snapshots reach a buffer" abstract.
package transport

// RemoteTimeSource resolves the sender's-clock timestamp attributed to
// whatever message is currently being processed. Snapshots within one
// batch share a single remote time, which is why PoseUpdate itself
// carries no timestamp field.
type RemoteTimeSource interface {
	RemoteTimestampFor(batch PoseBatch) float64
}

// BatchTimeSource is the simplest possible RemoteTimeSource: the batch
// carries its own sender-clock timestamp, stamped once for every pose
// update it contains. Real deployments might instead derive this from
// the transport's own per-packet receive metadata; this module has no
// such transport, so the batch is explicit about it.
type BatchTimeSource struct{}

func (BatchTimeSource) RemoteTimestampFor(batch PoseBatch) float64 {
	return batch.SentAt
}
