package fixedpool

import "github.com/WladWD/hpc-primitives/arena"

// NumaPool layers a FixedPool directly over a NumaArena's backing bytes:
// one allocation (the arena's), one free list threaded through it — not a
// FixedPool built from its own separately allocated buffer. This resolves
// the layering open question in spec.md §9 in favour of pool-over-arena-
// storage, matching how the examples pack's slab/object pools sit on top
// of a single slab allocation rather than calling the allocator per block.
type NumaPool struct {
	*FixedPool
	arena *arena.NumaArena
}

// NewNumaPool constructs a NumaArena of elementSize*n bytes bound to
// preferredNode (best effort — see NumaArena), then partitions that same
// backing buffer into n free-list blocks.
func NewNumaPool(elementSize, n, preferredNode int) *NumaPool {
	if elementSize < linkSize {
		elementSize = linkSize
	}
	a := arena.NewNumaArena(elementSize*n, preferredNode)
	buf, ok := a.Allocate(elementSize*n, 1)
	if !ok {
		panic("fixedpool: NumaArena too small for requested pool capacity")
	}
	return &NumaPool{
		FixedPool: NewFromBuffer(buf, elementSize),
		arena:     a,
	}
}

// Node reports the NUMA node the pool's backing memory was bound to, or -1
// if no binding was attempted or NUMA is unavailable.
func (p *NumaPool) Node() int {
	return p.arena.Node()
}
