package strtable

import "unsafe"

// Estimates capacity (number of slots) from the given memory size in bytes.
// Only the slot store is counted, not the key bytes it points to.
func CapacityFromSize[V any](size uintptr) int {
	return int(size / unsafe.Sizeof(slot[V]{}))
}
