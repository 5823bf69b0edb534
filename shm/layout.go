// Package shm implements a fixed-element-size SPSC ring buffer over an
// externally-mapped byte region (spec.md §3.5, §4.7, §6): two processes
// sharing a mmap'd segment, one producer and one consumer, no in-process
// synchronization primitive usable across the process boundary. Grounded
// on the header/ring layout convention in the examples pack's
// gRPC-over-shared-memory transport (SegmentHeaderSize-style fixed layout,
// w/r monotonic counters) — adapted here to a typed element ring instead of
// a raw byte stream, and to the spec's own wire layout: capacity is used
// directly, not rounded to a power of two, and wrap uses modulo arithmetic
// rather than a bitmask.
//
// Author: momentics <momentics@gmail.com>
package shm

import "encoding/binary"

// headerSize is the byte width of the packed layout header: capacity,
// head and tail, each a little-endian uint64 (spec §4.7 — a minimal
// fixed-offset header, no magic/version fields since the region is never
// shared outside this module's own producer/consumer pair).
const headerSize = 24

// layout describes the fixed byte offsets of the control header at the
// start of a shared region. Element storage begins immediately after
// headerSize.
type layout struct {
	region []byte
}

func newLayout(region []byte) layout {
	return layout{region: region}
}

func (l layout) capacity() uint64 {
	return binary.LittleEndian.Uint64(l.region[0:8])
}

func (l layout) setCapacity(v uint64) {
	binary.LittleEndian.PutUint64(l.region[0:8], v)
}

func (l layout) head() uint64 {
	return binary.LittleEndian.Uint64(l.region[8:16])
}

func (l layout) setHead(v uint64) {
	binary.LittleEndian.PutUint64(l.region[8:16], v)
}

func (l layout) tail() uint64 {
	return binary.LittleEndian.Uint64(l.region[16:24])
}

func (l layout) setTail(v uint64) {
	binary.LittleEndian.PutUint64(l.region[16:24], v)
}

func (l layout) data() []byte {
	return l.region[headerSize:]
}
