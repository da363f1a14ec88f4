package strtable

import "errors"

var (
	// ErrInvalidCapacity is returned when a table is created with a
	// capacity less than one.
	ErrInvalidCapacity = errors.New("strtable: capacity must be positive")

	// ErrHashFuncLocked is returned when replacing the hash function of a
	// table that has already stored keys. Existing slots were placed with
	// the old function and would become unreachable.
	ErrHashFuncLocked = errors.New("strtable: hash function cannot change after insertion")
)
