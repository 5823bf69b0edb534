// Package spinlock exposes the TTAS spinlock as a public facade over
// internal/concurrency, following the same thin-wrapper layering as
// package ring (spec.md §4.4).
//
// Author: momentics <momentics@gmail.com>
package spinlock

import "github.com/WladWD/hpc-primitives/internal/concurrency"

// Spinlock is a test-test-and-set mutual-exclusion lock with exponential
// backoff. The zero value is unlocked and ready to use.
type Spinlock = concurrency.TtasSpinlock
