package engine

import (
	"sort"
)

// computePValuesAndFDRs converts observed scores plus the pooled null scores
// into two-sided empirical p-values and BH-corrected FDR values.
//
// For each score v, the forward p-value is the fraction of pooled null values
// >= v and the reverse p-value the fraction <= v; either is floored at
// 1/pool-size rather than reporting zero, since an empirical zero is an
// artifact of finite sampling. The two-sided p-value is the smaller of the
// two. FDR is the elementwise minimum of BH corrections applied jointly
// across all features to the forward and to the reverse p-value vectors.
func computePValuesAndFDRs(scores []float64, pool []float64) (pValues, fdrs []float64) {
	sorted := make([]float64, len(pool))
	copy(sorted, pool)
	sort.Float64s(sorted)

	size := float64(len(sorted))
	floor := 1 / size

	forward := make([]float64, len(scores))
	reverse := make([]float64, len(scores))
	pValues = make([]float64, len(scores))

	for i, v := range scores {
		// count of null values >= v
		ge := len(sorted) - sort.SearchFloat64s(sorted, v)
		// count of null values <= v
		le := sort.Search(len(sorted), func(k int) bool { return sorted[k] > v })

		pF := float64(ge) / size
		if pF == 0 {
			pF = floor
		}
		pR := float64(le) / size
		if pR == 0 {
			pR = floor
		}

		forward[i] = pF
		reverse[i] = pR
		if pF < pR {
			pValues[i] = pF
		} else {
			pValues[i] = pR
		}
	}

	fdrForward := benjaminiHochberg(forward)
	fdrReverse := benjaminiHochberg(reverse)

	fdrs = make([]float64, len(scores))
	for i := range fdrs {
		if fdrForward[i] < fdrReverse[i] {
			fdrs[i] = fdrForward[i]
		} else {
			fdrs[i] = fdrReverse[i]
		}
	}
	return pValues, fdrs
}

// benjaminiHochberg applies the BH step-up correction to a p-value vector.
// Adjusted values are p*n/rank with a running minimum taken from the largest
// rank downward, clamped to 1. The correction is a function of the whole
// vector, so it is always applied across all features jointly.
func benjaminiHochberg(pValues []float64) []float64 {
	n := len(pValues)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pValues[order[a]] < pValues[order[b]]
	})

	adjusted := make([]float64, n)
	runningMin := 1.0
	for i := n - 1; i >= 0; i-- {
		rank := i + 1
		adj := pValues[order[i]] * float64(n) / float64(rank)
		if adj < runningMin {
			runningMin = adj
		}
		adjusted[order[i]] = runningMin
	}
	return adjusted
}
