package spinlock

import (
	"sync"
	"testing"
)

// TestSpinlockMutualExclusion is scenario S6 from spec.md §8: four
// goroutines each perform 1000 increments of a shared counter under the
// lock; the final count must be exactly 4000 with no lost updates.
func TestSpinlockMutualExclusion(t *testing.T) {
	const goroutines = 4
	const iterations = 1000

	var lock Spinlock
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				lock.Lock()
				counter++
				lock.Unlock()
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*iterations {
		t.Fatalf("expected %d, got %d", goroutines*iterations, counter)
	}
}

func TestSpinlockTryLock(t *testing.T) {
	var lock Spinlock

	if !lock.TryLock() {
		t.Fatal("expected TryLock to succeed on an unlocked lock")
	}
	if lock.TryLock() {
		t.Fatal("expected TryLock to fail while already held")
	}
	lock.Unlock()
	if !lock.TryLock() {
		t.Fatal("expected TryLock to succeed after Unlock")
	}
}
