//go:build windows

// File: internal/platform/hugepage_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows large-page allocation via VirtualAlloc(MEM_LARGE_PAGES), grounded
// on the teacher's core/buffer/bufferpool_windows.go VirtualAllocExNuma call.
// Large pages require SeLockMemoryPrivilege; absent that, VirtualAlloc fails
// and this falls back to a plain committed region.

package platform

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func acquireHugePages(size int) HugePageRegion {
	minLarge := int(windows.GetLargePageMinimum())
	length := size
	if minLarge > 0 {
		length = ((size + minLarge - 1) / minLarge) * minLarge
	}

	addr, err := windows.VirtualAlloc(0, uintptr(length),
		windows.MEM_RESERVE|windows.MEM_COMMIT|windows.MEM_LARGE_PAGES,
		windows.PAGE_READWRITE)
	align := minLarge
	if err != nil || addr == 0 {
		// No SeLockMemoryPrivilege, or large pages unsupported: plain commit.
		addr, err = windows.VirtualAlloc(0, uintptr(length),
			windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
		if err != nil || addr == 0 {
			return HugePageRegion{Bytes: make([]byte, size), Align: 1}
		}
		align = 1
	}
	full := unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
	return HugePageRegion{Bytes: full[:size], Align: align, full: full}
}

func releaseHugePages(r HugePageRegion) {
	if r.full == nil {
		return
	}
	addr := uintptr(unsafe.Pointer(&r.full[0]))
	_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
