package engine

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"gomatch/domain/match"
	"gomatch/internal/errors"
	"gomatch/ports"
)

// bootstrapFraction approximates the expected unique-sample coverage of a
// with-replacement bootstrap draw (1 - 1/e).
const bootstrapFraction = 0.632

// minBootstrapSamples is the smallest per-round draw for which a CI is
// statistically meaningful.
const minBootstrapSamples = 3

// canComputeCI reports whether the skip thresholds for CI estimation are met
func canComputeCI(nSamples, nSamplings int) bool {
	if nSamplings < 2 {
		return false
	}
	return int(math.Ceil(bootstrapFraction*float64(nSamples))) >= minBootstrapSamples
}

// computeConfidenceIntervals estimates a CI half-width per feature by
// bootstrap resampling: each round draws ceil(0.632*n) sample indices
// uniformly with replacement, rescores every feature against the sampled
// target/feature pairs, and the half-width is taken as
// z(confidence) * stdev(round scores) / sqrt(nSamplings).
//
// The normal approximation of the bootstrap score distribution is kept
// deliberately, so output stays numerically comparable across releases.
// Returns nil without error when the skip thresholds are not met.
func (e *Engine) computeConfidenceIntervals(target match.Target, features match.FeatureMatrix,
	fn ports.ScoreFunc, nSamplings int, confidence float64, seed int64) ([]float64, error) {

	n := len(target)
	if !canComputeCI(n, nSamplings) || len(features) == 0 {
		return nil, nil
	}
	drawSize := int(math.Ceil(bootstrapFraction * float64(n)))

	// One scoring stream per feature across all rounds
	distributions := make([][]float64, len(features))
	for i := range distributions {
		distributions[i] = make([]float64, nSamplings)
	}

	// Seed once before the round loop; every round draws from the current
	// stream state. Scoring cannot consume from this stream (see
	// ports.ScoreFunc), so the resampling sequence is isolated by design.
	rng := e.rng.SeededStream("bootstrap", seed)

	indices := make([]int, drawSize)
	sampledTarget := make(match.Target, drawSize)
	for round := 0; round < nSamplings; round++ {
		for i := range indices {
			indices[i] = rng.Intn(n)
		}
		for i, idx := range indices {
			sampledTarget[i] = target[idx]
		}

		sampledFeatures := make(match.FeatureMatrix, len(features))
		for fi, feature := range features {
			row := make([]float64, drawSize)
			for i, idx := range indices {
				row[i] = feature[idx]
			}
			sampledFeatures[fi] = row
		}

		roundScores, err := Score(sampledTarget, sampledFeatures, fn)
		if err != nil {
			return nil, err
		}
		for fi, s := range roundScores {
			distributions[fi][round] = s
		}
	}

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.5 + confidence/2)

	widths := make([]float64, len(features))
	for fi, dist := range distributions {
		sd, err := stats.StandardDeviation(dist)
		if err != nil {
			return nil, errors.Wrap(err, "bootstrap score distribution")
		}
		widths[fi] = z * sd / math.Sqrt(float64(nSamplings))
	}
	return widths, nil
}
