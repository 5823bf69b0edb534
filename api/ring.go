// Package api
// Author: momentics@gmail.com
//
// Lock-free ring buffer contract shared by the SPSC and MPMC implementations.

package api

// Ring is the non-blocking bounded-queue contract. TryPush/TryPop never
// block; they report success/failure immediately. ApproximateLen and Cap
// use relaxed loads and are advisory under concurrent access.
type Ring[T any] interface {
	// TryPush appends an item, returns false if the queue is full.
	TryPush(item T) bool
	// TryPop removes the oldest item, returns false if the queue is empty.
	TryPop() (T, bool)
	// ApproximateLen returns a relaxed snapshot of the item count.
	ApproximateLen() int
	// Cap returns the usable buffer capacity.
	Cap() int
}
