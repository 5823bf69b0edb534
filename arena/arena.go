// Package arena implements a bump allocator: a contiguous byte buffer with a
// pointer that only ever advances, reset to the start in O(1), never freed
// object-by-object. Grounded on the lock-free bump allocator found in the
// examples pack (AkiebNazir-kv-store's Arena, CAS-free here since the
// contract — spec.md §4.1, §5 — is single-goroutine use; external
// synchronization is the caller's job if an Arena is shared).
//
// Author: momentics <momentics@gmail.com>
package arena

import (
	"unsafe"

	"github.com/WladWD/hpc-primitives/api"
	"github.com/WladWD/hpc-primitives/internal/platform"
)

// Arena is a bump allocator over a contiguous backing buffer. The zero
// value is not usable; construct with New, NewHugePage, or NewFromBuffer.
type Arena struct {
	buf      []byte
	ptr      int
	owning   bool
	hugePage platform.HugePageRegion
}

var _ api.Allocator = (*Arena)(nil)

// New allocates an owning Arena backed by a fresh size-byte buffer.
func New(size int) *Arena {
	return &Arena{buf: make([]byte, size), owning: true}
}

// NewHugePage allocates an owning Arena backed by huge-page memory where the
// platform supports it (spec.md §1: allocators are "optionally ... backed
// by huge pages"), transparently falling back to a regular allocation on
// platforms or configurations without huge-page support (internal/platform's
// AcquireHugePages). Callers done with a huge-page-backed Arena should call
// Release to return the underlying pages; Release is a no-op on an Arena
// constructed with New or NewFromBuffer.
func NewHugePage(size int) *Arena {
	region := platform.AcquireHugePages(size)
	return &Arena{buf: region.Bytes, owning: true, hugePage: region}
}

// NewFromBuffer wraps a caller-supplied buffer without taking ownership;
// Reset never frees it and the Arena's lifetime is bounded by the buffer's.
func NewFromBuffer(buf []byte) *Arena {
	return &Arena{buf: buf, owning: false}
}

// Release returns any huge-page-backed memory to the platform. Safe to call
// on an Arena that was never huge-page backed (AcquireHugePages/
// ReleaseHugePages tolerate the zero HugePageRegion as a no-op); the Arena
// must not be used after Release.
func (a *Arena) Release() {
	platform.ReleaseHugePages(a.hugePage)
}

// Owning reports whether the Arena allocated its own backing buffer.
func (a *Arena) Owning() bool {
	return a.owning
}

// Allocate rounds the bump pointer up to align (which must be a power of
// two — the spec marks a non-power-of-two align as an undetected contract
// violation, so Allocate does not validate it) and returns a bytes-length
// slice, or (nil, false) if doing so would exceed the backing buffer. O(1),
// never blocks, never panics on exhaustion.
func (a *Arena) Allocate(bytes, align int) ([]byte, bool) {
	if align <= 0 {
		align = 1
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	cur := base + uintptr(a.ptr)
	aligned := alignUp(cur, uintptr(align))
	pad := int(aligned - cur)

	start := a.ptr + pad
	end := start + bytes
	if end > len(a.buf) || end < start {
		return nil, false
	}
	a.ptr = end
	return a.buf[start:end:end], true
}

func alignUp(p, align uintptr) uintptr {
	return (p + align - 1) &^ (align - 1)
}

// Reset rewinds the bump pointer to the start of the backing buffer. It
// does not run destructors for objects previously constructed inside the
// arena — the caller is responsible for any such teardown before Reset.
func (a *Arena) Reset() {
	a.ptr = 0
}

// Capacity returns the total size of the backing buffer.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Used returns the number of bytes allocated since the last Reset.
func (a *Arena) Used() int {
	return a.ptr
}

// Data returns the full backing buffer (begin..end in spec terms).
func (a *Arena) Data() []byte {
	return a.buf
}
