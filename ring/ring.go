// Package ring exposes the SPSC and MPMC ring buffers as public,
// generic-friendly facades over internal/concurrency, mirroring the
// teacher's pool.BufferRing-wraps-concurrency.RingBuffer layering: the
// internal package carries the lock-free engine, this package is the
// stable surface callers construct and depend on (spec.md §3.1, §3.2).
//
// Author: momentics <momentics@gmail.com>
package ring

import (
	"github.com/WladWD/hpc-primitives/internal/concurrency"
	"github.com/WladWD/hpc-primitives/internal/platform"
)

// CacheLineSize is the platform's coherence-unit size, in bytes, that Spsc
// and Mpmc pad their internal tail/head indices to. Callers laying out
// their own fields adjacent to a ring (e.g. a per-consumer counter read
// hot) can use it to avoid false sharing with the ring's own indices.
const CacheLineSize = platform.CacheLineSize

// Spsc is a bounded single-producer/single-consumer ring buffer.
// Exactly one producer goroutine and one consumer goroutine may call it
// concurrently; any other pairing is undefined (spec §4.5, §5).
type Spsc[T any] struct {
	*concurrency.SpscRingBuffer[T]
}

// NewSpsc constructs an Spsc with usable capacity of at least requested
// elements.
func NewSpsc[T any](requested int) *Spsc[T] {
	return &Spsc[T]{concurrency.NewSpscRingBuffer[T](requested)}
}

// Mpmc is a bounded multi-producer/multi-consumer ring buffer using the
// Vyukov slot-sequence protocol. Safe for any number of concurrent
// producers and consumers (spec §4.6, §5).
type Mpmc[T any] struct {
	*concurrency.MpmcRingBuffer[T]
}

// NewMpmc constructs an Mpmc with capacity rounded up to a power of two
// (minimum 2).
func NewMpmc[T any](requested int) *Mpmc[T] {
	return &Mpmc[T]{concurrency.NewMpmcRingBuffer[T](requested)}
}
