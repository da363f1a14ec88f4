package strtable

import (
	"iter"
	"log/slog"
	"strings"
)

// FreeFunc destroys a value the table has taken ownership of.
type FreeFunc[V any] func(value V)

type table[V any] struct {
	slots []slot[V]

	length     int
	tombstones int
	growths    int

	// Set once a key has been placed with hashFunc.
	sealed bool

	hashFunc HashFunc
	freeFunc FreeFunc[V]
	logger   *slog.Logger

	emptyV V
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

// Register a destructor for stored values.
func WithFreeFunc[V any](f FreeFunc[V]) Option[V] {
	return func(t *table[V]) {
		t.freeFunc = f
	}
}

// Log growth and compaction events. Discarded by default.
func WithLogger[V any](l *slog.Logger) Option[V] {
	return func(t *table[V]) {
		t.logger = l
	}
}

func (t *table[V]) init(capacity int, opts ...Option[V]) {
	t.slots = make([]slot[V], capacity)

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = FNV1a
	}

	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
}

// locate walks the linear probe sequence of key over slots.
//
// It returns the index of the slot holding key and true, or an insertion
// point and false. The insertion point is the first tombstone seen before
// the first empty slot, else that empty slot. If every slot is occupied or
// a tombstone, it's the first tombstone, else the last visited index.
// An unallocated store yields -1.
func locate[V any](slots []slot[V], hashFunc HashFunc, key string) (int, bool) {
	capacity := uint64(len(slots))
	if capacity == 0 {
		return -1, false
	}

	var (
		home      = hashFunc(key) % capacity
		tombstone = -1
		idx       int
	)

	for p := uint64(0); p < capacity; p++ {
		idx = int((home + p) % capacity)
		s := &slots[idx]

		switch s.state {
		case slotOccupied:
			if s.key == key {
				return idx, true
			}
		case slotTombstone:
			if tombstone < 0 {
				tombstone = idx
			}
		case slotEmpty:
			if tombstone >= 0 {
				return tombstone, false
			}

			return idx, false
		}
	}

	if tombstone >= 0 {
		return tombstone, false
	}

	return idx, false
}

func (t *table[V]) locate(key string) (int, bool) {
	return locate(t.slots, t.hashFunc, key)
}

func (t *table[V]) get(key string) (V, bool) {
	idx, found := t.locate(key)
	if !found {
		return t.emptyV, false
	}

	return t.slots[idx].value, true
}

func (t *table[V]) exists(key string) bool {
	_, found := t.locate(key)
	return found
}

// set stores value under key, reporting whether key is new.
func (t *table[V]) set(key string, value V) bool {
	idx, found := t.locate(key)
	if found {
		s := &t.slots[idx]
		if t.freeFunc != nil {
			t.freeFunc(s.value)
		}
		s.value = value

		return false
	}

	if needsGrow(t.length, len(t.slots)) {
		t.grow()
		idx, _ = t.locate(key)
	}

	s := &t.slots[idx]
	if s.state == slotTombstone {
		t.tombstones--
	}

	s.state = slotOccupied
	s.key = strings.Clone(key)
	s.value = value
	t.length++
	t.sealed = true

	return true
}

// take vacates the slot holding key and hands its value back.
func (t *table[V]) take(key string) (V, bool) {
	idx, found := t.locate(key)
	if !found {
		return t.emptyV, false
	}

	s := &t.slots[idx]
	value := s.value

	s.state = slotTombstone
	s.key = ""
	s.value = t.emptyV
	t.length--
	t.tombstones++

	return value, true
}

func (t *table[V]) delete(key string) bool {
	value, ok := t.take(key)
	if ok && t.freeFunc != nil {
		t.freeFunc(value)
	}

	return ok
}

func (t *table[V]) grow() {
	from := len(t.slots)
	to := nextCapacity(from)

	t.rehash(to)
	t.growths++

	t.logger.Debug("strtable: grew table",
		slog.Int("from", from),
		slog.Int("to", to),
		slog.Int("length", t.length),
	)
}

// rehash moves every occupied slot into a fresh store of the given
// capacity. Owned keys move as they are; tombstones are dropped.
func (t *table[V]) rehash(capacity int) {
	slots := make([]slot[V], capacity)

	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotOccupied {
			continue
		}

		idx, _ := locate(slots, t.hashFunc, s.key)
		slots[idx] = *s
	}

	t.slots = slots
	t.tombstones = 0
}

// destroy runs the free func over every resident value.
func (t *table[V]) destroy() {
	if t.freeFunc == nil {
		return
	}

	for i := range t.slots {
		if t.slots[i].state == slotOccupied {
			t.freeFunc(t.slots[i].value)
		}
	}
}

func (t *table[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range t.slots {
			s := &t.slots[i]
			if s.state != slotOccupied {
				continue
			}

			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Len returns the number of stored keys.
func (t *table[V]) Len() int {
	return t.length
}

// Cap returns the number of slots.
func (t *table[V]) Cap() int {
	return len(t.slots)
}

// Reset removes every key, running the free func on resident values.
// Capacity is retained.
func (t *table[V]) Reset() {
	t.destroy()
	clear(t.slots)

	t.length = 0
	t.tombstones = 0
	t.sealed = false
}

// Compact rebuilds the table at its current capacity, dropping tombstones.
func (t *table[V]) Compact() {
	if t.tombstones == 0 {
		return
	}

	dropped := t.tombstones
	t.rehash(len(t.slots))

	t.logger.Debug("strtable: compacted table",
		slog.Int("capacity", len(t.slots)),
		slog.Int("length", t.length),
		slog.Int("tombstones", dropped),
	)
}

func (t *table[V]) Stats() Stats {
	st := Stats{
		Size:       t.length,
		Capacity:   len(t.slots),
		Tombstones: t.tombstones,
		Growths:    t.growths,
	}

	if st.Capacity > 0 {
		st.LoadFactor = float32(st.Size) / float32(st.Capacity)
		st.TombstonesCapacityRatio = float32(st.Tombstones) / float32(st.Capacity)
	}

	if st.Size > 0 {
		st.TombstonesSizeRatio = float32(st.Tombstones) / float32(st.Size)
	}

	return st
}
