// Package engine implements the match resampling core: row-wise association
// scoring of a feature matrix against a target, bootstrap confidence-interval
// estimation for a selected top/bottom subset, permutation null-distribution
// generation, and empirical p-value/FDR computation, all reproducible under a
// fixed seed and parallelized over contiguous feature chunks.
package engine

import (
	"context"
	"time"

	"gomatch/domain/match"
	"gomatch/domain/run"
	"gomatch/internal"
	"gomatch/ports"
)

// Engine orchestrates the match pipeline. Stateless between runs; safe for
// concurrent use.
type Engine struct {
	log *internal.Logger
	rng ports.RNGPort
}

// New creates an engine with the default logger and seeded RNG streams
func New() *Engine {
	return NewWithDeps(internal.DefaultLogger, NewSeededStreams())
}

// NewWithDeps creates an engine with explicit dependencies
func NewWithDeps(logger *internal.Logger, rng ports.RNGPort) *Engine {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if rng == nil {
		rng = NewSeededStreams()
	}
	return &Engine{log: logger, rng: rng}
}

// Match runs the full pipeline: score every feature, select a top/bottom
// subset for CI estimation, bootstrap the CI half-widths, build the pooled
// permutation null, and derive p-values/FDR for every feature. The returned
// table is positionally aligned with the feature matrix; the manifest records
// seed, options and an input fingerprint for replay verification.
func (e *Engine) Match(ctx context.Context, target match.Target, features match.FeatureMatrix,
	fn ports.ScoreFunc, opts match.Options) (*match.ResultTable, *run.MatchManifest, error) {

	started := time.Now()

	opts, err := opts.Normalize()
	if err != nil {
		return nil, nil, err
	}
	if err := match.ValidateAligned(target, features); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	manifest := run.NewMatchManifest(opts, target, features)
	e.log.Info("Run %s: %d features x %d samples, %d worker(s), seed %d",
		manifest.RunID, features.NumFeatures(), len(target), opts.NJobs, opts.RandomSeed)

	table := match.NewResultTable(features.NumFeatures(), opts.Confidence)

	// Phase 1: observed scores
	e.log.Info("Computing scores[i] = fn(target, features[i]) ...")
	scoreChunks, err := dispatch(features, opts.NJobs, func(chunk match.FeatureMatrix) ([]float64, error) {
		return Score(target, chunk, fn)
	})
	if err != nil {
		return nil, nil, err
	}
	scores := make([]float64, 0, features.NumFeatures())
	for _, chunk := range scoreChunks {
		scores = append(scores, chunk...)
	}
	table.SetScores(scores)

	// Phase 2: bootstrap CI for the selected subset
	e.log.Info("Computing %v CI ...", opts.Confidence)
	switch {
	case opts.NSamplings < 2:
		e.log.Info("\tSkipping because n_samplings < 2.")
	case !canComputeCI(len(target), opts.NSamplings):
		e.log.Info("\tSkipping because %v * n_samples < %d.", bootstrapFraction, minBootstrapSamples)
	case opts.NFeatures <= 0:
		e.log.Info("\tSkipping because no CI selection threshold is set.")
	default:
		e.log.Info("\tWith %d bootstrapped distributions ...", opts.NSamplings)
		indices := match.SelectTopBottom(scores, opts.NFeatures)
		widths, err := e.computeConfidenceIntervals(target, features.Rows(indices), fn,
			opts.NSamplings, opts.Confidence, opts.RandomSeed)
		if err != nil {
			return nil, nil, err
		}
		if widths != nil {
			table.SetCI(indices, widths)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	// Phase 3: pooled permutation null, p-values and FDR
	e.log.Info("Computing p-value and FDR ...")
	if opts.NPermutations < 1 {
		e.log.Info("\tSkipping because n_permutations < 1.")
	} else {
		e.log.Info("\tBy scoring against %d permuted targets ...", opts.NPermutations)
		nullChunks, err := dispatch(features, opts.NJobs, func(chunk match.FeatureMatrix) ([][]float64, error) {
			return e.permuteAndScore(target, chunk, fn, opts.NPermutations, opts.RandomSeed)
		})
		if err != nil {
			return nil, nil, err
		}
		pValues, fdrs := computePValuesAndFDRs(scores, flattenNull(nullChunks))
		table.SetSignificance(pValues, fdrs)
	}

	manifest.RuntimeMs = time.Since(started).Milliseconds()
	e.log.Debug("Run %s finished in %dms", manifest.RunID, manifest.RuntimeMs)
	return table, manifest, nil
}

// NullPool exposes the pooled permutation null for a target/feature pair
// without running the full pipeline. Useful for inspecting the empirical null
// a p-value was judged against.
func (e *Engine) NullPool(ctx context.Context, target match.Target, features match.FeatureMatrix,
	fn ports.ScoreFunc, opts match.Options) ([]float64, error) {

	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}
	if err := match.ValidateAligned(target, features); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.NPermutations < 1 {
		return nil, nil
	}

	nullChunks, err := dispatch(features, opts.NJobs, func(chunk match.FeatureMatrix) ([][]float64, error) {
		return e.permuteAndScore(target, chunk, fn, opts.NPermutations, opts.RandomSeed)
	})
	if err != nil {
		return nil, err
	}
	return flattenNull(nullChunks), nil
}
