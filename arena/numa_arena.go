package arena

import "github.com/WladWD/hpc-primitives/internal/platform"

// NumaArena composes an Arena with a best-effort NUMA placement hint (spec
// §4.3). It allocates its own owning backing buffer and, when the platform
// supports NUMA and preferredNode >= 0, asks the platform layer to bind that
// buffer's pages to preferredNode. Neither a bind failure nor an unsupported
// platform is surfaced as an error, and allocation behaves exactly like a
// plain Arena. On an unsupported platform Node() reports -1; a bind failure
// is not detected, so Node() still reports preferredNode in that case.
type NumaArena struct {
	*Arena
	node int
}

// NewNumaArena allocates a size-byte owning Arena and applies the NUMA
// binding hint for preferredNode. preferredNode < 0, a preferredNode beyond
// the topology reported by platform.NodeCount, or an unavailable NUMA
// backend all disable placement entirely (node() reports -1).
func NewNumaArena(size int, preferredNode int) *NumaArena {
	a := New(size)
	node := -1
	if preferredNode >= 0 && platform.NUMAAvailable() && preferredNode < platform.NodeCount() {
		platform.BindHint(a.Data(), preferredNode)
		node = preferredNode
	}
	return &NumaArena{Arena: a, node: node}
}

// Node reports the NUMA node the arena's backing memory was bound to, or -1
// if no binding was attempted or NUMA is unavailable.
func (n *NumaArena) Node() int {
	return n.node
}
