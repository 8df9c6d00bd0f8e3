package ports

import (
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic
// resampling. Two calls with the same name and seed must return independent
// generators that emit identical sequences, so every parallel worker can
// re-seed by value instead of sharing live generator state.
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a
	// named engine phase ("bootstrap", "permutation")
	SeededStream(name string, seed int64) *rand.Rand
}
