//go:build linux

// File: internal/platform/hugepage_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux huge-page backed allocation via mmap(MAP_HUGETLB), grounded on the
// teacher's core/buffer/bufferpool_linux.go (which used the raw "syscall"
// package); rewritten against golang.org/x/sys/unix, the package the rest of
// the teacher's Linux-specific files (reactor_linux.go, transport_linux.go)
// already use for exactly this kind of direct syscall access.

package platform

import "golang.org/x/sys/unix"

// hugePageSize is the standard x86_64/arm64 huge page size (2 MiB). Systems
// configured for 1 GiB pages still accept MAP_HUGETLB with this length; the
// kernel just serves it from the default huge page pool.
const hugePageSize = 2 << 20

func acquireHugePages(size int) HugePageRegion {
	length := ((size + hugePageSize - 1) / hugePageSize) * hugePageSize

	align := hugePageSize
	b, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		// No huge pages configured, or insufficient reserved pool: fall back
		// to a plain anonymous mapping of the same size so callers still get
		// a page-aligned region, just not huge-page backed.
		b, err = unix.Mmap(-1, 0, length,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANON|unix.MAP_PRIVATE)
		if err != nil {
			return HugePageRegion{Bytes: make([]byte, size), Align: 1}
		}
		align = 1
	}
	return HugePageRegion{Bytes: b[:size], Align: align, full: b}
}

func releaseHugePages(r HugePageRegion) {
	if r.full == nil {
		// Plain make([]byte, ...) fallback path: nothing to unmap.
		return
	}
	_ = unix.Munmap(r.full)
}
