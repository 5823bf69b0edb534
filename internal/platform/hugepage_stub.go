//go:build !linux && !windows

// File: internal/platform/hugepage_stub.go
// Author: momentics <momentics@gmail.com>
//
// Platforms without a huge-page syscall path in this package: fall back to
// a plain heap allocation. Align 1 signals "no special alignment guarantee"
// to callers, same as the mmap-failure fallback on Linux.

package platform

func acquireHugePages(size int) HugePageRegion {
	return HugePageRegion{Bytes: make([]byte, size), Align: 1}
}

func releaseHugePages(r HugePageRegion) {
	// Heap-backed fallback: nothing to release explicitly.
}
