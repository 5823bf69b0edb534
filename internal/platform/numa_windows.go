//go:build windows

// File: internal/platform/numa_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows NUMA support: node count via GetNumaHighestNodeNumber (kernel32),
// no placement. Windows exposes no supported
// API to rebind already-committed pages to a different node, so Bind is a
// documented no-op (returns ErrNotSupported) — placement must happen at
// allocation time, which NumaArena does not attempt on this platform. The
// arena still functions and NumaArena.Node() still reports the requested
// node (the hint is advisory, per spec §4.3); only the physical placement is
// absent. Nodes() remains accurate since GetNumaHighestNodeNumber needs no
// binding support to answer.

package platform

import (
	"unsafe"

	"github.com/WladWD/hpc-primitives/api"
	"golang.org/x/sys/windows"
)

type windowsNUMAAllocator struct{}

func createNUMAAllocator() NUMAAllocator {
	return &windowsNUMAAllocator{}
}

func (w *windowsNUMAAllocator) Bind(buf []byte, node int) error {
	return api.ErrNotSupported
}

var procGetNumaHighestNodeNumber = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetNumaHighestNodeNumber")

func (w *windowsNUMAAllocator) Nodes() (int, error) {
	var highest uint32
	ret, _, err := procGetNumaHighestNodeNumber.Call(uintptr(unsafe.Pointer(&highest)))
	if ret == 0 {
		return 1, err
	}
	return int(highest) + 1, nil
}
