// Package api holds the contracts shared across the concurrency and memory
// primitives: the sentinel errors declared for the components and the small
// interfaces (Ring, Allocator, ObjectAllocator) concrete types assert
// compliance against.
//
// Author: momentics <momentics@gmail.com>

package api

import "fmt"

// Sentinel errors. The hot paths (try_push/try_pop/allocate) never return
// these directly — they signal exhaustion/would-block via a bare bool or a
// nil pointer, per spec. Of these sentinels, only ErrNotSupported is
// returned anywhere in this module (by the Windows NUMA backend's Bind);
// shm.Attach reports failure with a bool and shm.Create panics.
var (
	ErrQueueFull       = fmt.Errorf("ring buffer is full")
	ErrQueueEmpty      = fmt.Errorf("ring buffer is empty")
	ErrPoolExhausted   = fmt.Errorf("fixed pool is exhausted")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrNotSupported    = fmt.Errorf("operation not supported on this platform")
	ErrAlreadyExists   = fmt.Errorf("shared-memory region already initialised")
	ErrNotOwner        = fmt.Errorf("operation requires region ownership")
	ErrRegionTooSmall  = fmt.Errorf("mapped region too small for requested capacity")
)

