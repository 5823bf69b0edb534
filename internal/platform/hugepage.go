package platform

// HugePageRegion describes memory handed back by the huge-page service:
// ptr/size/align as specified in spec.md §6 ("Platform huge-page service").
// Bytes is sliced down to exactly the requested size; full/align record the
// underlying mapping so ReleaseHugePages can unmap the whole thing.
type HugePageRegion struct {
	Bytes []byte
	Align int

	full []byte // the untruncated mapping, needed for Munmap/VirtualFree
}

// AcquireHugePages requests size bytes backed by huge pages where the
// platform supports it. On failure, or on a platform with no huge-page
// support, it transparently falls back to a regular heap allocation — huge
// pages are a performance hint, never a correctness requirement (spec §7:
// "platform unavailability... silently downgraded to the next-best
// behaviour").
func AcquireHugePages(size int) HugePageRegion {
	return acquireHugePages(size)
}

// ReleaseHugePages returns a region obtained from AcquireHugePages. It
// tolerates a zero-value HugePageRegion (nil Bytes) as a no-op, matching the
// "free(region) tolerates {null, 0, 0}" contract in spec.md §6.
func ReleaseHugePages(r HugePageRegion) {
	releaseHugePages(r)
}
