package senses

import (
	"math"
)

// histogram bin count for the mutual-information estimate
const miBins = 10

// InformationCoefficient computes a signed information-theoretic association
// score in [-1, 1]: sqrt(1 - exp(-2*MI)) with the sign of the Pearson
// correlation. MI is estimated from a binned joint histogram, so the score
// also picks up non-linear, non-monotonic structure that correlation-based
// metrics miss.
//
// This is the engine's default scoring function.
func InformationCoefficient(target, feature []float64) (float64, error) {
	if err := checkPair(target, feature); err != nil {
		return 0, err
	}

	mi := mutualInformation(target, feature)

	// Map MI onto [0, 1]; the linear-Gaussian case recovers |r|
	magnitude := math.Sqrt(1 - math.Exp(-2*mi))

	if pearson(target, feature) < 0 {
		return -magnitude, nil
	}
	return magnitude, nil
}

// mutualInformation estimates MI in nats from a binned joint histogram
func mutualInformation(x, y []float64) float64 {
	xBins := binData(x, miBins)
	yBins := binData(y, miBins)

	joint := make([][]int, miBins)
	for i := range joint {
		joint[i] = make([]int, miBins)
	}

	for i := 0; i < len(x); i++ {
		joint[xBins[i]][yBins[i]]++
	}

	n := float64(len(x))
	rowTotals := make([]float64, miBins)
	colTotals := make([]float64, miBins)
	for i := 0; i < miBins; i++ {
		for j := 0; j < miBins; j++ {
			rowTotals[i] += float64(joint[i][j])
			colTotals[j] += float64(joint[i][j])
		}
	}

	mi := 0.0
	for i := 0; i < miBins; i++ {
		for j := 0; j < miBins; j++ {
			if joint[i][j] == 0 {
				continue
			}
			pXY := float64(joint[i][j]) / n
			pX := rowTotals[i] / n
			pY := colTotals[j] / n
			mi += pXY * math.Log(pXY/(pX*pY))
		}
	}

	if mi < 0 {
		mi = 0
	}
	return mi
}
