// File: internal/concurrency/spsc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpscRingBuffer is a single-producer/single-consumer bounded ring buffer
// using the gap method (spec.md §3.2): storage is one slot larger than the
// usable capacity so head==tail unambiguously means empty and tail-head==N
// means full, with no per-slot sequence numbers needed. Adapted from the
// teacher's internal/concurrency/ring.go, which already used this head/tail
// gap shape (single CAS-free load/store per side) rather than the
// Vyukov sequence protocol used by core/concurrency/ring.go — that protocol
// is reserved for MpmcRingBuffer in mpmc.go.

package concurrency

import (
	"sync/atomic"

	"github.com/WladWD/hpc-primitives/api"
	"github.com/WladWD/hpc-primitives/internal/platform"
)

// SpscRingBuffer is safe for exactly one producer goroutine and one
// consumer goroutine concurrently; any other pairing is undefined (spec
// §4.5, §5 "Shared-resource policy").
type SpscRingBuffer[T any] struct {
	tail atomic.Uint64 // producer-owned
	_    platform.CacheLinePad
	head atomic.Uint64 // consumer-owned
	_    platform.CacheLinePad

	mask    uint64
	data    []T
	usable  int
}

var _ api.Ring[int] = (*SpscRingBuffer[int])(nil)

// NewSpscRingBuffer rounds storage to nextPow2(requested+1), reserving one
// slot to distinguish full from empty, and exposes usable capacity
// storage-1 (spec §4.5). requested < 1 is treated as 1.
func NewSpscRingBuffer[T any](requested int) *SpscRingBuffer[T] {
	if requested < 1 {
		requested = 1
	}
	storage := nextPow2(uint64(requested + 1))
	return &SpscRingBuffer[T]{
		mask:   storage - 1,
		data:   make([]T, storage),
		usable: int(storage - 1),
	}
}

func nextPow2(n uint64) uint64 {
	if n <= 1 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// TryPush constructs item at the next producer slot and publishes it.
// Returns false iff the queue is full.
func (r *SpscRingBuffer[T]) TryPush(item T) bool {
	tail := r.tail.Load()
	head := r.head.Load() // acquire: must observe consumer progress
	if tail-head == uint64(len(r.data)-1) {
		return false
	}
	r.data[tail&r.mask] = item
	r.tail.Store(tail + 1) // release: publish to consumer
	return true
}

// TryPop destroys (zeroes) and returns the oldest element. Returns false iff
// the queue is empty.
func (r *SpscRingBuffer[T]) TryPop() (T, bool) {
	head := r.head.Load()
	tail := r.tail.Load() // acquire: must observe producer progress
	if head == tail {
		var zero T
		return zero, false
	}
	idx := head & r.mask
	item := r.data[idx]
	var zero T
	r.data[idx] = zero // destroy: drop references, match "destroy after move-out"
	r.head.Store(head + 1)
	return item, true
}

// TryAcquireProducerSlot returns a pointer to the next writable slot, or nil
// if full. The producer must construct the element in place, then call
// CommitProducerSlot with no other producer-side call in between.
func (r *SpscRingBuffer[T]) TryAcquireProducerSlot() *T {
	tail := r.tail.Load()
	head := r.head.Load()
	if tail-head == uint64(len(r.data)-1) {
		return nil
	}
	return &r.data[tail&r.mask]
}

// CommitProducerSlot publishes the slot previously returned by
// TryAcquireProducerSlot.
func (r *SpscRingBuffer[T]) CommitProducerSlot() {
	r.tail.Store(r.tail.Load() + 1)
}

// TryAcquireConsumerSlot returns a pointer to the oldest readable slot, or
// nil if empty. The consumer must read/move out the element, then call
// ReleaseConsumerSlot with no other consumer-side call in between.
func (r *SpscRingBuffer[T]) TryAcquireConsumerSlot() *T {
	head := r.head.Load()
	tail := r.tail.Load()
	if head == tail {
		return nil
	}
	return &r.data[head&r.mask]
}

// ReleaseConsumerSlot destroys and retires the slot previously returned by
// TryAcquireConsumerSlot.
func (r *SpscRingBuffer[T]) ReleaseConsumerSlot() {
	head := r.head.Load()
	idx := head & r.mask
	var zero T
	r.data[idx] = zero
	r.head.Store(head + 1)
}

// TryPushBatch pushes up to len(src) items, stopping at the first full
// slot. Not atomic: a partial batch may be observed by the consumer mid-way
// (spec §4.5).
func (r *SpscRingBuffer[T]) TryPushBatch(src []T) int {
	n := 0
	for n < len(src) {
		if !r.TryPush(src[n]) {
			break
		}
		n++
	}
	return n
}

// TryPopBatch pops up to len(dst) items into dst, stopping at the first
// empty slot. Not atomic.
func (r *SpscRingBuffer[T]) TryPopBatch(dst []T) int {
	n := 0
	for n < len(dst) {
		v, ok := r.TryPop()
		if !ok {
			break
		}
		dst[n] = v
		n++
	}
	return n
}

// ApproximateLen returns a relaxed snapshot of the item count.
func (r *SpscRingBuffer[T]) ApproximateLen() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns the usable capacity (storage slots minus the reserved gap
// slot).
func (r *SpscRingBuffer[T]) Cap() int {
	return r.usable
}
