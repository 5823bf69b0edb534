package shm

import (
	"unsafe"

	"github.com/WladWD/hpc-primitives/api"
)

// ShmSpscRingBuffer is a fixed-element-size SPSC ring buffer laid out
// entirely inside a caller-provided, externally-mapped byte region (spec.md
// §3.5, §4.7, §6). Unlike the in-process Spsc, capacity here is used
// directly — not rounded to a power of two — and fullness is detected by
// `(tail+1) mod capacity == head`, one slot short of the full region, per
// the wire layout in spec §6. Head/tail are plain little-endian counters in
// the header, not sync/atomic — matching the spec's deliberately simple
// cross-process contract (open question §9): a hardened variant could widen
// these to platform atomics with the same acquire/release discipline as the
// in-process Spsc without changing the on-wire layout.
//
// Exactly one process/goroutine may produce and exactly one may consume;
// any other pairing is undefined, identical to the in-process Spsc.
type ShmSpscRingBuffer[T any] struct {
	layout   layout
	capacity uint64
	data     []T
}

var _ api.Ring[int] = (*ShmSpscRingBuffer[int])(nil)

// Create initializes a fresh region as an empty ring of exactly capacity
// slots (used directly, not rounded — spec §3.5). The region must be at
// least RequiredSize(capacity, elementSize[T]()) bytes; Create panics
// otherwise, since an undersized region is a construction-time programmer
// error, not a runtime condition (spec §7). A capacity below 2 is raised to
// 2: with one slot always held in reserve to distinguish full from empty, a
// capacity of 1 could never hold an element.
func Create[T any](region []byte, capacity int) *ShmSpscRingBuffer[T] {
	if capacity < 2 {
		capacity = 2
	}
	need := RequiredSize(capacity, elementSize[T]())
	if len(region) < need {
		panic("shm: region too small for requested capacity")
	}

	l := newLayout(region)
	l.setCapacity(uint64(capacity))
	l.setHead(0)
	l.setTail(0)

	return &ShmSpscRingBuffer[T]{
		layout:   l,
		capacity: uint64(capacity),
		data:     castElements[T](l.data(), capacity),
	}
}

// Attach maps an existing ring previously initialized by Create in the
// same region. Returns (nil, false) if the region is too small for the
// capacity recorded in its header.
func Attach[T any](region []byte) (*ShmSpscRingBuffer[T], bool) {
	if len(region) < headerSize {
		return nil, false
	}
	l := newLayout(region)
	capacity := l.capacity()
	need := RequiredSize(int(capacity), elementSize[T]())
	if len(region) < need {
		return nil, false
	}
	return &ShmSpscRingBuffer[T]{
		layout:   l,
		capacity: capacity,
		data:     castElements[T](l.data(), int(capacity)),
	}, true
}

// RequiredSize returns the total region size, in bytes, needed for a ring
// of the given capacity (slot count) and element size (spec §6: 24 +
// capacity * sizeof(T)).
func RequiredSize(capacity, elemSize int) int {
	return headerSize + capacity*elemSize
}

func elementSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func castElements[T any](b []byte, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// TryPush writes item at slot tail and advances tail, unless doing so would
// make the ring indistinguishable from empty (spec §3.5: fullness is
// `(tail+1) mod capacity == head`). Returns false iff full.
func (r *ShmSpscRingBuffer[T]) TryPush(item T) bool {
	tail := r.layout.tail()
	head := r.layout.head()
	next := (tail + 1) % r.capacity
	if next == head {
		return false
	}
	r.data[tail] = item
	r.layout.setTail(next)
	return true
}

// TryPop reads and removes the element at slot head. Returns false iff
// head == tail (empty).
func (r *ShmSpscRingBuffer[T]) TryPop() (T, bool) {
	head := r.layout.head()
	tail := r.layout.tail()
	if head == tail {
		var zero T
		return zero, false
	}
	item := r.data[head]
	var zero T
	r.data[head] = zero
	r.layout.setHead((head + 1) % r.capacity)
	return item, true
}

// ApproximateLen returns the item count as observed at the moment of the
// call; with no atomics backing head/tail this is advisory even within a
// single process (spec §4.7).
func (r *ShmSpscRingBuffer[T]) ApproximateLen() int {
	tail := r.layout.tail()
	head := r.layout.head()
	if tail >= head {
		return int(tail - head)
	}
	return int(r.capacity - head + tail)
}

// Cap returns the usable capacity: capacity slots minus the one always
// held in reserve to distinguish full from empty.
func (r *ShmSpscRingBuffer[T]) Cap() int {
	return int(r.capacity) - 1
}
