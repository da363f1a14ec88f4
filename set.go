package strtable

import "iter"

// KeySet is a set of strings backed by the same table as Table, storing
// no values.
type KeySet struct {
	table[struct{}]
}

func NewKeySet(capacity int, opts ...Option[struct{}]) (*KeySet, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	var ks KeySet
	ks.init(capacity, opts...)

	return &ks, nil
}

// Puts a key in the set. Returns whether the key is new.
func (ks *KeySet) Add(key string) bool {
	return ks.set(key, struct{}{})
}

func (ks *KeySet) Has(key string) bool {
	return ks.exists(key)
}

func (ks *KeySet) Remove(key string) bool {
	_, ok := ks.take(key)
	return ok
}

func (ks *KeySet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range ks.all() {
			if !yield(k) {
				return
			}
		}
	}
}
