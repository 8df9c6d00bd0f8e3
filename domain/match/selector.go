package match

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// SelectTopBottom picks the feature indices that receive a bootstrap CI.
//
// threshold >= 1 selects by count: the top ceil(threshold/2) and bottom
// floor(threshold/2) scoring features, capped at the number of features.
// A threshold in (0, 1) is a percentile fraction: features beyond the
// threshold percentile in each tail are selected. A threshold <= 0 selects
// nothing.
//
// The returned index set is sorted ascending, so selecting twice with the
// same inputs yields the same set.
func SelectTopBottom(scores []float64, threshold float64) []int {
	if threshold <= 0 || len(scores) == 0 {
		return nil
	}

	selected := make(map[int]bool)

	if threshold >= 1 {
		total := int(threshold)
		if total > len(scores) {
			total = len(scores)
		}
		nTop := (total + 1) / 2
		nBottom := total / 2

		ranked := make([]int, len(scores))
		for i := range ranked {
			ranked[i] = i
		}
		sort.SliceStable(ranked, func(a, b int) bool {
			return scores[ranked[a]] > scores[ranked[b]]
		})

		for i := 0; i < nTop; i++ {
			selected[ranked[i]] = true
		}
		for i := 0; i < nBottom; i++ {
			selected[ranked[len(ranked)-1-i]] = true
		}
	} else {
		high, errHigh := stats.Percentile(scores, threshold*100)
		low, errLow := stats.Percentile(scores, (1-threshold)*100)
		if errHigh != nil || errLow != nil {
			return nil
		}
		for i, s := range scores {
			if math.IsNaN(s) {
				continue
			}
			if s >= high || s <= low {
				selected[i] = true
			}
		}
	}

	indices := make([]int, 0, len(selected))
	for i := range selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}
