// Package testkit provides synthetic data generators shared by engine tests.
package testkit

import (
	"math"
	"math/rand"

	"gomatch/domain/match"
)

// MonotoneTarget returns [1, 2, ..., n] as a target vector
func MonotoneTarget(n int) match.Target {
	target := make(match.Target, n)
	for i := range target {
		target[i] = float64(i + 1)
	}
	return target
}

// Reversed returns a copy of v in reverse order
func Reversed(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}

// NoisyCopy returns v plus Gaussian noise drawn from rng
func NoisyCopy(v []float64, sigma float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x + rng.NormFloat64()*sigma
	}
	return out
}

// RandomMatrix builds a features x samples matrix of standard normal draws
func RandomMatrix(nFeatures, nSamples int, seed int64) match.FeatureMatrix {
	rng := rand.New(rand.NewSource(seed))
	m := make(match.FeatureMatrix, nFeatures)
	for i := range m {
		row := make([]float64, nSamples)
		for j := range row {
			row[j] = rng.NormFloat64()
		}
		m[i] = row
	}
	return m
}

// SineFeature returns sin(k * t) per target entry, a non-linear companion to
// a monotone target
func SineFeature(target match.Target, k float64) []float64 {
	out := make([]float64, len(target))
	for i, t := range target {
		out[i] = math.Sin(k * t)
	}
	return out
}
