package transport

import "sync"

// InboundQueue hands PoseBatch values from whatever goroutine the router
// callbacks run on over to the simulation thread, which must drain it
// before calling Driver.OnReceived.
//
// This generalizes a size-1 buffered "drain stale, push latest" channel
// (the shape a client connection's own world-snapshot channel takes when
// it only ever cares about the newest value) into something that must
// not drop anything: the buffer's own InsertIfNewEnough policy is what
// decides what survives, so InboundQueue keeps every batch until the
// simulation thread drains it.
type InboundQueue struct {
	mu      sync.Mutex
	pending []PoseBatch
}

// Push enqueues a batch received on a router/transport goroutine. Safe to
// call concurrently with Drain and with other Push calls.
func (q *InboundQueue) Push(batch PoseBatch) {
	q.mu.Lock()
	q.pending = append(q.pending, batch)
	q.mu.Unlock()
}

// Drain removes and returns every batch enqueued since the last Drain, in
// arrival order. Call once per simulation tick, before any
// Driver.OnReceived calls.
func (q *InboundQueue) Drain() []PoseBatch {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
