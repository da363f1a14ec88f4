package strtable

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to a hash; the table reduces it modulo capacity.
type HashFunc func(key string) uint64

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// FNV1a is the default hash function: 64-bit FNV-1a over the key bytes.
// Produces the same sums as hash/fnv.New64a without allocating a hasher.
func FNV1a(key string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime64
	}

	return h
}

// XXHash hashes the key with xxHash64. Faster than FNV1a on long keys.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
