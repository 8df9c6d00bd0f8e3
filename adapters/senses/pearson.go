package senses

import (
	"math"
)

// Pearson computes the Pearson correlation coefficient between the target and
// one feature. Returns 0 when either vector has zero variance.
func Pearson(target, feature []float64) (float64, error) {
	if err := checkPair(target, feature); err != nil {
		return 0, err
	}
	return pearson(target, feature), nil
}

func pearson(x, y []float64) float64 {
	n := float64(len(x))
	sumX, sumY := 0.0, 0.0
	sumXY, sumX2, sumY2 := 0.0, 0.0, 0.0

	for i := 0; i < len(x); i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))

	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}
