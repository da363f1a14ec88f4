// Package strtable implements an open-addressing hash table keyed by strings.
//
// Collisions are resolved with linear probing. Deleted slots are marked with
// tombstones so probe chains of other keys stay intact, and are reused by
// later insertions. The table grows before an insertion would push the load
// factor to 70%, walking a fixed schedule of prime capacities; growth drops
// all tombstones.
//
// The table owns a private copy of every key. Values belong to the caller
// unless a FreeFunc is registered, in which case the table destroys values
// that are overwritten, deleted, or still resident when it is freed.
//
// A Table is not safe for concurrent use.
package strtable

import (
	"fmt"
	"iter"
)

type Table[V any] struct {
	table[V]
}

// Returns a new table with DefaultCapacity slots.
func New[V any](opts ...Option[V]) *Table[V] {
	return MustNew(DefaultCapacity, opts...)
}

// Returns a new table with the given number of slots.
func NewWithCapacity[V any](capacity int, opts ...Option[V]) (*Table[V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	var t Table[V]
	t.init(capacity, opts...)

	return &t, nil
}

// Like NewWithCapacity, but panics on an invalid capacity.
func MustNew[V any](capacity int, opts ...Option[V]) *Table[V] {
	t, err := NewWithCapacity(capacity, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// Returns the value stored under key.
func (t *Table[V]) Get(key string) (V, bool) {
	return t.get(key)
}

// Checks whether a key is in the table.
func (t *Table[V]) Exists(key string) bool {
	return t.exists(key)
}

// Stores value under key, growing the table if needed.
//
// If key is already present its value is replaced, and the old value is
// passed to the free func, if one is registered.
func (t *Table[V]) Set(key string, value V) {
	t.set(key, value)
}

// Removes key and hands its value back to the caller.
// The free func is never called on it.
func (t *Table[V]) Remove(key string) (V, bool) {
	return t.take(key)
}

// Removes key, passing its value to the free func, if one is registered.
func (t *Table[V]) Delete(key string) bool {
	return t.delete(key)
}

// SetFreeFunc registers or replaces the value destructor. Values already
// stored are only affected once they're overwritten, deleted or freed.
func (t *Table[V]) SetFreeFunc(f FreeFunc[V]) {
	t.freeFunc = f
}

// SetHashFunc replaces the hash function. It's only allowed before the
// first insertion; passing nil restores FNV1a.
func (t *Table[V]) SetHashFunc(f HashFunc) error {
	if t.sealed {
		return ErrHashFuncLocked
	}

	if f == nil {
		f = FNV1a
	}
	t.hashFunc = f

	return nil
}

// Free destroys every resident value through the free func and releases the
// slot store. It's a no-op on a nil table and safe to call twice.
//
// A freed table reads as empty. Storing into it allocates a new store of
// DefaultCapacity.
func (t *Table[V]) Free() {
	if t == nil {
		return
	}

	t.destroy()

	t.slots = nil
	t.length = 0
	t.tombstones = 0
	t.sealed = false
}

// All yields every key/value pair in storage order.
// The table must not be modified while iterating.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return t.all()
}

// Keys yields every key in storage order.
func (t *Table[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range t.all() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in storage order.
func (t *Table[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.all() {
			if !yield(v) {
				return
			}
		}
	}
}
