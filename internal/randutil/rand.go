// Package randutil centralizes how command-line seeds are turned into a
// reproducible random source, so every subcommand that draws cards agrees
// on one derivation.
package randutil

import "math/rand"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Two
// avalanche-mixed derivatives of seed feed the source so that nearby seed
// values (0, 1, 2, ...) still produce uncorrelated sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewSource(int64(mix(u) ^ mix(u+goldenRatio64))))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
