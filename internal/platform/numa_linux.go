//go:build linux && cgo

// File: internal/platform/numa_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux NUMA binding via libnuma. Grounded on the teacher's
// pool/numa_linux.go cgo allocator, extended with numa_tonode_memory so an
// already-allocated buffer (the arena's owning storage) can be bound after
// the fact rather than only at allocation time.

package platform

/*
#cgo LDFLAGS: -lnuma
#include <numa.h>
#include <stdlib.h>

int go_numa_tonode_memory(void *start, size_t size, int node) {
	if (numa_available() == -1 || node < 0) {
		return -1;
	}
	numa_tonode_memory(start, size, node);
	return 0;
}
*/
import "C"
import (
	"fmt"
	"unsafe"
)

type linuxNUMAAllocator struct{}

func createNUMAAllocator() NUMAAllocator {
	if C.numa_available() == -1 {
		return nil
	}
	return &linuxNUMAAllocator{}
}

func (l *linuxNUMAAllocator) Bind(buf []byte, node int) error {
	if len(buf) == 0 {
		return nil
	}
	ret := C.go_numa_tonode_memory(unsafe.Pointer(&buf[0]), C.size_t(len(buf)), C.int(node))
	if ret != 0 {
		return fmt.Errorf("platform: numa_tonode_memory failed for node %d", node)
	}
	return nil
}

func (l *linuxNUMAAllocator) Nodes() (int, error) {
	nodes := C.numa_max_node()
	if nodes < 0 {
		return 1, fmt.Errorf("platform: NUMA not available")
	}
	return int(nodes + 1), nil
}
