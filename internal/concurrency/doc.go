// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package concurrency holds the lock-free engines the public ring and
// spinlock packages wrap: a single-producer/single-consumer gap-method ring
// buffer, a Vyukov-style multi-producer/multi-consumer slot-sequence ring
// buffer, and a test-test-and-set spinlock with exponential backoff.
//
// Every type here is monomorphic in its element type T via compile-time
// generics (no dynamic dispatch) and every memory-ordering choice is part of
// the contract, not an optimization: weakening an acquire/release pairing is
// a correctness bug, not a performance tweak.
package concurrency
