package snapshot

import "sort"

// Buffer is an ordered-by-timestamp container of Snapshots. Keys are
// strictly increasing and unique; once the buffer has warmed up (two or
// more entries) the two oldest entries are considered "pinned" for
// ongoing interpolation and InsertIfNewEnough refuses anything that would
// land at or before the second-oldest timestamp. That refusal is what
// prevents the ACB hazard: a late snapshot arriving between two snapshots
// already under active interpolation would otherwise steer motion
// backward mid-blend.
//
// Buffer is not safe for concurrent use; callers on an I/O thread must
// hand snapshots off to the simulation thread before calling any method
// here (see transport.InboundQueue).
type Buffer struct {
	entries []Snapshot
}

// Len returns the number of buffered snapshots.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// First returns the oldest buffered snapshot. Panics if the buffer is
// empty; callers must check Len() first (mirrors buffer invariants that
// make first.timestamp < second.timestamp always hold once warmed up).
func (b *Buffer) First() Snapshot {
	return b.entries[0]
}

// Second returns the second-oldest buffered snapshot. Panics if Len() < 2.
func (b *Buffer) Second() Snapshot {
	return b.entries[1]
}

// At returns the snapshot at index i, oldest first.
func (b *Buffer) At(i int) Snapshot {
	return b.entries[i]
}

// InsertIfNewEnough admits candidate per the strict ordering policy:
//  1. empty buffer: always insert.
//  2. one entry: reject if candidate.Timestamp <= entries[0].Timestamp.
//  3. two or more entries: reject if candidate.Timestamp <= entries[1].Timestamp
//     (the ACB guard — entries[0] and entries[1] are the pair currently
//     under interpolation).
//  4. otherwise insert, keeping entries sorted by Timestamp.
//
// All comparisons are <=, not <, so duplicate timestamps are silently
// rejected rather than replacing the existing entry (idempotent admission).
func (b *Buffer) InsertIfNewEnough(candidate Snapshot) {
	switch {
	case len(b.entries) == 0:
		b.entries = append(b.entries, candidate)
		return
	case len(b.entries) == 1:
		if candidate.Timestamp <= b.entries[0].Timestamp {
			return
		}
	default:
		if candidate.Timestamp <= b.entries[1].Timestamp {
			return
		}
	}

	idx := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Timestamp > candidate.Timestamp
	})
	if idx > 0 && b.entries[idx-1].Timestamp == candidate.Timestamp {
		return
	}
	b.entries = append(b.entries, Snapshot{})
	copy(b.entries[idx+1:], b.entries[idx:])
	b.entries[idx] = candidate
}

// RetireOldest drops the oldest buffered snapshot. Used by the
// interpolation kernel when interpolation_time overtakes the current
// pair's duration and a third snapshot is available to advance into.
func (b *Buffer) RetireOldest() {
	if len(b.entries) == 0 {
		return
	}
	copy(b.entries, b.entries[1:])
	b.entries = b.entries[:len(b.entries)-1]
}

// Reset empties the buffer. Called by Driver.Reset on entity disable.
func (b *Buffer) Reset() {
	b.entries = nil
}
