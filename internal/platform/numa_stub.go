//go:build !windows && (!linux || !cgo)

// File: internal/platform/numa_stub.go
// Author: momentics <momentics@gmail.com>
//
// Platforms without a NUMA backend: createNUMAAllocator returns nil, and
// every caller in this package already treats a nil backend as "unavailable,
// downgrade silently".

package platform

func createNUMAAllocator() NUMAAllocator {
	return nil
}
