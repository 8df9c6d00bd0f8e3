package engine

import (
	"hash/fnv"
	"math/rand"
)

// SeededStreams is the default ports.RNGPort implementation. Streams are
// derived from the configured seed plus the phase name, so the bootstrap and
// permutation phases draw from distinct but fully deterministic sequences,
// and every worker that re-seeds with the same name and seed replays the
// exact same sequence.
type SeededStreams struct{}

// NewSeededStreams creates the default RNG stream factory
func NewSeededStreams() SeededStreams {
	return SeededStreams{}
}

// SeededStream creates a deterministic generator for a named engine phase
func (SeededStreams) SeededStream(name string, seed int64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewSource(seed ^ int64(h.Sum64())))
}
