package platform

// NUMAAllocator is the L0 NUMA placement service consumed by NumaArena and
// NumaPool. Concrete backends are selected at build time via the
// createNUMAAllocator factory in the platform-specific files in this package.
type NUMAAllocator interface {
	// Bind requests the OS place buf's physical pages on node, best-effort,
	// for memory the caller already owns (e.g. a Go-heap-allocated arena
	// backing buffer). A failure is silent — callers cannot distinguish a
	// bind failure from an unsupported platform, by design (spec §4.3: the
	// hint is advisory).
	Bind(buf []byte, node int) error

	// Nodes reports the number of NUMA nodes visible to the process, or an
	// error if NUMA topology could not be queried.
	Nodes() (int, error)
}

// numaAllocator is the process-wide backend, resolved once at init via the
// platform-specific createNUMAAllocator. Nil means "NUMA unsupported here".
var numaAllocator = createNUMAAllocator()

// BindHint best-effort binds an already-allocated region to preferredNode.
// preferredNode < 0 or a nil/unavailable backend disables the hint entirely;
// in both cases the caller's buffer is left exactly as allocated. Binding
// failures are swallowed: the spec treats platform unavailability as a
// silent downgrade, not an error.
func BindHint(buf []byte, preferredNode int) {
	if preferredNode < 0 || numaAllocator == nil || len(buf) == 0 {
		return
	}
	_ = numaAllocator.Bind(buf, preferredNode)
}

// NUMAAvailable reports whether a NUMA backend is usable at all on this
// platform; NumaArena/NumaPool use it to decide whether Node() should report
// -1 regardless of the caller's requested node.
func NUMAAvailable() bool {
	return numaAllocator != nil
}

// NodeCount reports the number of NUMA nodes, or 1 if NUMA is unavailable.
func NodeCount() int {
	if numaAllocator == nil {
		return 1
	}
	n, err := numaAllocator.Nodes()
	if err != nil || n < 1 {
		return 1
	}
	return n
}
