package engine

import (
	"gomatch/domain/match"
	"gomatch/internal/errors"
	"gomatch/ports"
)

// Score computes scores[i] = fn(target, features[i]) for every feature row.
// Pure and stateless: sample alignment between target and features is a
// precondition checked by the caller.
func Score(target match.Target, features match.FeatureMatrix, fn ports.ScoreFunc) ([]float64, error) {
	scores := make([]float64, len(features))
	for i, feature := range features {
		s, err := fn(target, feature)
		if err != nil {
			return nil, errors.ScoreFailure(i, err)
		}
		scores[i] = s
	}
	return scores, nil
}
