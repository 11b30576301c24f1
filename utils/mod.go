package utils

import "golang.org/x/exp/rand"

// Choice picks an element uniformly at random. It panics on an empty slice.
func Choice[T any](r *rand.Rand, items []T) T {
	if len(items) == 0 {
		panic("cannot choose from an empty slice")
	}
	return items[r.Intn(len(items))]
}

// NewRand returns a random source seeded with seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
