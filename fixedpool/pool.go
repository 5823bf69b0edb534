// Package fixedpool implements a fixed-size object pool backed by a single
// contiguous buffer partitioned into N equal blocks, threaded into a
// singly-linked free list (spec.md §3.4, §4.2). The link for each free
// block is encoded directly into the block's own bytes — no side-table, no
// reference counting — matching the spec's "link stored inside the block"
// contract. Grounded on the slab/object-pool patterns in the examples pack
// (pool/objpool.go's free-list wrapper, pool/slab_pool.go's size-class
// bookkeeping), generalized to the spec's exact exhaustion/reuse semantics.
//
// Author: momentics <momentics@gmail.com>
package fixedpool

import (
	"encoding/binary"

	"github.com/WladWD/hpc-primitives/api"
	"github.com/WladWD/hpc-primitives/internal/platform"
)

// linkSize is the width of the in-block free-list link (an index, not a
// pointer — Go slices make an index-linked free list both safe and GC
// friendly, avoiding raw pointers into the middle of a heap object).
const linkSize = 8

// noNext marks the end of the free list. Valid block indices are in
// [0, n), so any n is out of range and safe as a sentinel.
const noNext = ^uint64(0)

// FixedPool is a fixed-block-size free-list allocator. Not thread-safe;
// callers share it across goroutines only via their own synchronization
// (spec §5).
type FixedPool struct {
	buf         []byte
	elementSize int
	freeHead    uint64 // index of the first free block, or noNext
	hugePage    platform.HugePageRegion
}

var _ api.ObjectAllocator = (*FixedPool)(nil)

// New partitions a freshly allocated buffer into n blocks of elementSize
// bytes each and threads them onto the free list in address-descending
// order (spec §4.2 — any fixed order satisfies the contract).
// An elementSize below 8 is raised to 8 so each block can hold the in-block
// free-list link.
func New(elementSize, n int) *FixedPool {
	if elementSize < linkSize {
		elementSize = linkSize
	}
	return NewFromBuffer(make([]byte, elementSize*n), elementSize)
}

// NewHugePage partitions a fresh huge-page-backed buffer into n blocks of
// elementSize bytes each, falling back transparently to a regular
// allocation where the platform lacks huge-page support (spec.md §1:
// pools are "optionally ... backed by huge pages", via
// internal/platform.AcquireHugePages). Callers done with a huge-page-backed
// FixedPool should call Release to return the underlying pages.
func NewHugePage(elementSize, n int) *FixedPool {
	if elementSize < linkSize {
		elementSize = linkSize
	}
	region := platform.AcquireHugePages(elementSize * n)
	p := NewFromBuffer(region.Bytes, elementSize)
	p.hugePage = region
	return p
}

// Release returns any huge-page-backed memory to the platform. Safe to call
// on a pool that was never huge-page backed. The pool must not be used
// after Release.
func (p *FixedPool) Release() {
	platform.ReleaseHugePages(p.hugePage)
}

// NewFromBuffer partitions a caller-supplied buffer into
// len(buf)/elementSize blocks without allocating. Used by NumaPool to layer
// a free list directly over an arena's backing bytes with no second
// allocation (spec §4.3, open question resolution).
func NewFromBuffer(buf []byte, elementSize int) *FixedPool {
	n := len(buf) / elementSize
	p := &FixedPool{buf: buf, elementSize: elementSize, freeHead: noNext}
	for i := n - 1; i >= 0; i-- {
		p.pushFree(uint64(i))
	}
	return p
}

func (p *FixedPool) block(i uint64) []byte {
	off := int(i) * p.elementSize
	return p.buf[off : off+p.elementSize : off+p.elementSize]
}

func (p *FixedPool) pushFree(i uint64) {
	binary.LittleEndian.PutUint64(p.block(i), p.freeHead)
	p.freeHead = i
}

// Allocate pops the free-list head and returns its block, or (nil, false)
// if the pool is exhausted. O(1).
func (p *FixedPool) Allocate() ([]byte, bool) {
	if p.freeHead == noNext {
		return nil, false
	}
	i := p.freeHead
	blk := p.block(i)
	p.freeHead = binary.LittleEndian.Uint64(blk)
	return blk, true
}

// Deallocate pushes block back onto the free-list head. A nil block is a
// no-op. Passing a block not obtained from this pool, or passing the same
// block twice, corrupts the free list — the spec marks double-free as
// undefined behaviour the pool does not detect.
func (p *FixedPool) Deallocate(block []byte) {
	if block == nil {
		return
	}
	off := int(uintptrOf(block) - uintptrOf(p.buf))
	i := uint64(off / p.elementSize)
	p.pushFree(i)
}

// Cap returns the total number of blocks the pool was constructed with.
func (p *FixedPool) Cap() int {
	return len(p.buf) / p.elementSize
}
