package strtable

type slotState uint8

const (
	// slotEmpty has never been occupied since the store was allocated.
	// Zero value, so a freshly made store is all empty.
	slotEmpty slotState = iota

	// slotTombstone was vacated by a delete. Reusable for insertion,
	// but a lookup must keep probing past it.
	slotTombstone

	slotOccupied
)

type slot[V any] struct {
	state slotState

	// Owned copy of the caller's key, valid only when occupied.
	key string

	// Caller's value. Destroyed through the table's FreeFunc, if any,
	// when it's overwritten, deleted or the table is freed.
	value V
}
