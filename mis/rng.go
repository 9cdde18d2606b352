package mis

import (
	"math/rand"
	"time"
)

// DeriveSeed mixes the run seed and a trial number into that trial's seed (SplitMix64 finalizer).
// Neighbouring trial numbers give uncorrelated streams, and any trial can be replayed from its seed alone.
func DeriveSeed(parent int64, trial uint64) int64 {
	x := uint64(parent) ^ (trial + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Seed 0 means "pick one"; the chosen seed is reported in the result so the run can be repeated.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	for seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}

// Each worker owns one of these and reseeds it per trial. *rand.Rand must not be shared.
func newWorkerRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}
