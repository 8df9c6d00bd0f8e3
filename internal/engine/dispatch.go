package engine

import (
	"golang.org/x/sync/errgroup"

	"gomatch/domain/match"
	"gomatch/internal/errors"
)

// splitRows partitions features into p contiguous row-wise chunks whose sizes
// differ by at most one row, preserving row order. p is capped at the number
// of feature rows so no worker receives an empty chunk.
func splitRows(features match.FeatureMatrix, p int) []match.FeatureMatrix {
	if p > len(features) {
		p = len(features)
	}
	if p < 1 {
		p = 1
	}

	chunks := make([]match.FeatureMatrix, 0, p)
	base := len(features) / p
	extra := len(features) % p

	start := 0
	for i := 0; i < p; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks = append(chunks, features[start:start+size])
		start += size
	}
	return chunks
}

// dispatch fans a per-chunk function out over p workers and reassembles the
// chunk outputs in original chunk order regardless of completion order.
// Workers share no mutable state; each writes only its own result slot. Any
// worker error aborts the whole dispatch: a missing chunk would corrupt
// feature-index alignment, so no partial result is ever returned.
//
// With p = 1 the function is invoked once on the whole matrix on the calling
// goroutine, observably identical to a direct call.
func dispatch[T any](features match.FeatureMatrix, p int, fn func(chunk match.FeatureMatrix) (T, error)) ([]T, error) {
	chunks := splitRows(features, p)

	if len(chunks) == 1 {
		out, err := fn(chunks[0])
		if err != nil {
			return nil, errors.WorkerFailure(0, err)
		}
		return []T{out}, nil
	}

	results := make([]T, len(chunks))
	var g errgroup.Group
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			out, err := fn(chunk)
			if err != nil {
				return errors.WorkerFailure(i, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
