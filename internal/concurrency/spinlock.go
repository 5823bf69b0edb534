// File: internal/concurrency/spinlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// TtasSpinlock is a test-test-and-set spinlock with exponential backoff
// (spec.md §4.4). Grounded on the SpinLock pattern found elsewhere in the
// examples pack (a CAS-guarded uint32 with a runtime.Gosched() yield loop),
// generalized here to the spec's doubling-backoff discipline capped at
// maxBackoff.

package concurrency

import (
	"runtime"
	"sync/atomic"
)

// maxBackoff bounds the pause-iteration count so worst-case latency stays
// bounded (spec §4.4, §9).
const maxBackoff = 1 << 16

// TtasSpinlock provides mutual exclusion with no fairness guarantee. The
// zero value is an unlocked spinlock, ready to use.
type TtasSpinlock struct {
	held atomic.Bool
}

// Lock spins until it acquires the lock. The test loop relaxed-reads held
// before attempting the CAS, so contenders don't invalidate the cache line
// of a lock that looks free (spec §4.4 rationale).
func (l *TtasSpinlock) Lock() {
	backoff := 1
	for {
		for l.held.Load() {
			for i := 0; i < backoff; i++ {
				pause()
			}
			if backoff < maxBackoff {
				backoff <<= 1
			}
		}
		if l.held.CompareAndSwap(false, true) {
			return
		}
		// Lost the race to another contender: reset backoff before
		// re-entering the test phase, so a spurious CAS failure right after
		// the lock looked free doesn't inherit whatever backoff a prior,
		// longer contention period had wound up to.
		backoff = 1
	}
}

// TryLock attempts the CAS once, without spinning, and reports success.
func (l *TtasSpinlock) TryLock() bool {
	return l.held.CompareAndSwap(false, true)
}

// Unlock releases the lock. The caller must hold it.
func (l *TtasSpinlock) Unlock() {
	l.held.Store(false)
}

// pause yields the processor to a sibling goroutine. Go's runtime gives no
// portable PAUSE/yield intrinsic without cgo or assembly, so — matching the
// examples pack's own spinlock — runtime.Gosched() stands in for it on every
// architecture.
func pause() {
	runtime.Gosched()
}
