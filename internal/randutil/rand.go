// Package randutil derives reproducible random sources from int64 seeds.
// Enumeration never uses randomness; these sources only reorder decks and
// hands when checking that results do not depend on card order.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Perm returns a reproducible permutation of [0, n).
func Perm(seed int64, n int) []int {
	return New(seed).Perm(n)
}

// splitmix64 finalizer
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
