package strtable

// DefaultCapacity is the number of slots allocated by New.
const DefaultCapacity = 769

// Growth schedule. Primes roughly doubling each step, picked to keep
// clustering low under modulo indexing.
var capacities = [...]int{
	769, 1543, 3079, 6151, 12289, 24593,
	49157, 98317, 196613, 393241, 786433, 1572869,
	3145739, 6291469, 12582917, 25165843, 50331653, 100663319,
	201326611, 402653189, 805306457, 1610612741,
}

// nextCapacity returns the first scheduled capacity strictly greater than
// current, or doubles current once the schedule is exhausted.
func nextCapacity(current int) int {
	for _, c := range capacities {
		if c > current {
			return c
		}
	}

	return current * 2
}

// needsGrow reports whether inserting one more key into a table with the
// given length and capacity would cross the 70% load factor.
//
//go:inline
func needsGrow(length, capacity int) bool {
	return (length+1)*10 >= capacity*7
}
