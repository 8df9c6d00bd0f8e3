package engine

import (
	"gomatch/domain/match"
	"gomatch/ports"
)

// permuteAndScore builds one chunk's slice of the null score distribution:
// nPermutations rounds of shuffling a private copy of the target and
// rescoring every feature in the chunk against it. The result is
// features x permutations, aligned with the chunk's row order.
//
// The shuffle is cumulative: each round permutes the already-shuffled copy
// rather than resetting to the original order. Composing uniform permutations
// stays uniform, and the cumulative form is what makes output reproducible
// under a fixed seed.
//
// When run per dispatcher chunk, every worker re-seeds from the same
// configured seed and therefore replays the same shuffle sequence. The pooled
// null mixes per-chunk draws by design, and the shared seeding is also what
// keeps the null matrix bit-identical across worker counts.
func (e *Engine) permuteAndScore(target match.Target, chunk match.FeatureMatrix,
	fn ports.ScoreFunc, nPermutations int, seed int64) ([][]float64, error) {

	shuffled := make(match.Target, len(target))
	copy(shuffled, target)

	rng := e.rng.SeededStream("permutation", seed)

	null := make([][]float64, len(chunk))
	for i := range null {
		null[i] = make([]float64, nPermutations)
	}

	for round := 0; round < nPermutations; round++ {
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		// Scoring cannot touch the shuffle stream (see ports.ScoreFunc)
		scores, err := Score(shuffled, chunk, fn)
		if err != nil {
			return nil, err
		}
		for fi, s := range scores {
			null[fi][round] = s
		}
	}
	return null, nil
}

// flattenNull pools chunked null matrices into one exchangeable pool of null
// scores, discarding per-feature identity. Every feature's p-value is judged
// against this common pool, not a feature-specific null.
func flattenNull(chunked [][][]float64) []float64 {
	total := 0
	for _, chunk := range chunked {
		for _, row := range chunk {
			total += len(row)
		}
	}
	pool := make([]float64, 0, total)
	for _, chunk := range chunked {
		for _, row := range chunk {
			pool = append(pool, row...)
		}
	}
	return pool
}
