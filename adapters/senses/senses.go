// Package senses provides ready-made scoring functions satisfying the
// ports.ScoreFunc contract. The engine treats every scoring function as an
// opaque callable; these are defaults, not requirements. Callers substitute
// their own metrics for categorical or binary data by supplying a different
// ScoreFunc.
package senses

import (
	"fmt"
	"sort"
)

func checkPair(target, feature []float64) error {
	if len(target) == 0 {
		return fmt.Errorf("empty vectors")
	}
	if len(target) != len(feature) {
		return fmt.Errorf("vector length mismatch: %d vs %d", len(target), len(feature))
	}
	return nil
}

// rankData assigns ranks to data, handling ties by averaging
func rankData(data []float64) []float64 {
	n := len(data)
	ranks := make([]float64, n)

	type pair struct {
		value float64
		index int
	}

	pairs := make([]pair, n)
	for i, v := range data {
		pairs[i] = pair{v, i}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].value < pairs[j].value
	})

	i := 0
	for i < n {
		j := i
		// Find group of equal values
		for j < n-1 && pairs[j+1].value == pairs[i].value {
			j++
		}

		// Assign average rank to tied values
		avgRank := float64(i+j)/2.0 + 1
		for k := i; k <= j; k++ {
			ranks[pairs[k].index] = avgRank
		}

		i = j + 1
	}

	return ranks
}

// binData assigns data points to histogram bins
func binData(data []float64, bins int) []int {
	if len(data) == 0 {
		return []int{}
	}

	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	binIndices := make([]int, len(data))
	binWidth := (max - min) / float64(bins)

	for i, v := range data {
		if binWidth == 0 {
			binIndices[i] = 0
		} else {
			bin := int((v - min) / binWidth)
			if bin >= bins {
				bin = bins - 1
			}
			binIndices[i] = bin
		}
	}

	return binIndices
}
