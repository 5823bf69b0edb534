package fixedpool

import "unsafe"

// uintptrOf returns the address of a slice's backing array, or 0 for a nil
// or empty slice. Used only to compute a block's index from its address
// within the pool's single backing buffer (Deallocate).
func uintptrOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
