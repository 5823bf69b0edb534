// File: internal/concurrency/mpmc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// MpmcRingBuffer implements the Vyukov slot-sequence protocol (spec.md
// §3.1, §4.6): per-slot monotonic sequence counters eliminate ABA without
// tagged pointers, and fullness/emptiness are carried entirely by the
// sequence comparison rather than by head/tail arithmetic. Adapted from the
// teacher's core/concurrency/lock_free_queue.go and core/concurrency/ring.go
// (two near-identical copies of the same Vyukov queue found in the teacher
// repo) — consolidated here into the one canonical MPMC engine.

package concurrency

import (
	"sync/atomic"

	"github.com/WladWD/hpc-primitives/api"
	"github.com/WladWD/hpc-primitives/internal/platform"
)

type mpmcCell[T any] struct {
	sequence atomic.Uint64
	data     T
	_        platform.CacheLinePad // keeps neighbouring cells' sequences off one line
}

// MpmcRingBuffer supports any number of concurrent producers and consumers
// (spec §5). It is lock-free but not wait-free: an individual caller may
// retry while others make progress.
type MpmcRingBuffer[T any] struct {
	tail atomic.Uint64
	_    platform.CacheLinePad
	head atomic.Uint64
	_    platform.CacheLinePad

	mask  uint64
	cells []mpmcCell[T]
}

var _ api.Ring[int] = (*MpmcRingBuffer[int])(nil)

// NewMpmcRingBuffer rounds capacity up to a power of two, minimum 2
// (spec §4.6, §8 boundary: requested capacity 1 rounds up to 2).
func NewMpmcRingBuffer[T any](requested int) *MpmcRingBuffer[T] {
	if requested < 2 {
		requested = 2
	}
	size := nextPow2(uint64(requested))
	q := &MpmcRingBuffer[T]{
		mask:  size - 1,
		cells: make([]mpmcCell[T], size),
	}
	for i := range q.cells {
		q.cells[i].sequence.Store(uint64(i))
	}
	return q
}

// TryPush is try_emplace from spec §4.6: construct item in the slot a
// producer wins the CAS race for, then publish it with a release store of
// the slot's sequence.
func (q *MpmcRingBuffer[T]) TryPush(item T) bool {
	for {
		tail := q.tail.Load()
		cell := &q.cells[tail&q.mask]
		seq := cell.sequence.Load() // acquire: gates access to cell.data
		diff := int64(seq) - int64(tail)

		switch {
		case diff == 0:
			if q.tail.CompareAndSwap(tail, tail+1) {
				cell.data = item
				cell.sequence.Store(tail + 1) // release: publish to consumers
				return true
			}
			// CAS lost the race; reload tail and retry.
		case diff < 0:
			return false // full
		default:
			// another producer already advanced tail; reload and retry
		}
	}
}

// TryPop is the symmetric consumer protocol: claim a slot whose sequence
// equals head+1, move the element out, then publish the slot's sequence for
// its next cycle (head+capacity) with release.
func (q *MpmcRingBuffer[T]) TryPop() (T, bool) {
	for {
		head := q.head.Load()
		cell := &q.cells[head&q.mask]
		seq := cell.sequence.Load() // acquire
		diff := int64(seq) - int64(head+1)

		switch {
		case diff == 0:
			if q.head.CompareAndSwap(head, head+1) {
				item := cell.data
				var zero T
				cell.data = zero
				cell.sequence.Store(head + q.mask + 1) // release
				return item, true
			}
		case diff < 0:
			var zero T
			return zero, false // empty
		default:
			// another consumer already advanced head; reload and retry
		}
	}
}

// Empty reports whether the queue looked empty at the moment of the call.
// Relaxed/advisory (spec §4.6).
func (q *MpmcRingBuffer[T]) Empty() bool {
	head := q.head.Load()
	tail := q.tail.Load()
	return head == tail
}

// Full reports whether the queue looked full at the moment of the call. May
// return false negatives under contention (spec §4.6, §9); never a false
// positive on a quiescent queue.
func (q *MpmcRingBuffer[T]) Full() bool {
	return q.ApproximateLen() >= len(q.cells)
}

// ApproximateLen is approximate_size from spec §4.6: a relaxed, advisory
// snapshot.
func (q *MpmcRingBuffer[T]) ApproximateLen() int {
	tail := q.tail.Load()
	head := q.head.Load()
	return int(tail - head)
}

// Cap returns the power-of-two rounded capacity.
func (q *MpmcRingBuffer[T]) Cap() int {
	return len(q.cells)
}
