package engine

import (
	"math"
	"sort"
	"testing"
)

// TestComputePValues_FlooredNeverZero verifies empirical p-values stay within
// [1/pool, 1] even for scores beyond every null value
func TestComputePValues_FlooredNeverZero(t *testing.T) {
	pool := []float64{-0.5, -0.2, 0.0, 0.1, 0.3}
	scores := []float64{10.0, -10.0, 0.0}

	pValues, _ := computePValuesAndFDRs(scores, pool)

	floor := 1.0 / float64(len(pool))
	for i, p := range pValues {
		if p < floor || p > 1 {
			t.Errorf("p-value %d = %v outside [%v, 1]", i, p, floor)
		}
	}

	// Perfectly extreme scores hit the floor exactly
	if pValues[0] != floor {
		t.Errorf("extreme high score: p = %v, want floor %v", pValues[0], floor)
	}
	if pValues[1] != floor {
		t.Errorf("extreme low score: p = %v, want floor %v", pValues[1], floor)
	}
}

// TestComputePValues_TwoSidedMinimum verifies the two-sided p-value is the
// smaller of the forward and reverse one-sided p-values
func TestComputePValues_TwoSidedMinimum(t *testing.T) {
	pool := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

	// 0.95: forward = 1/10 (only 1.0 >= 0.95), reverse = 9/10
	pValues, _ := computePValuesAndFDRs([]float64{0.95}, pool)
	if pValues[0] != 0.1 {
		t.Errorf("p = %v, want 0.1", pValues[0])
	}

	// 0.15: forward = 9/10, reverse = 1/10 (only 0.1 <= 0.15)
	pValues, _ = computePValuesAndFDRs([]float64{0.15}, pool)
	if pValues[0] != 0.1 {
		t.Errorf("p = %v, want 0.1", pValues[0])
	}
}

// TestBenjaminiHochberg_MonotoneInPValueOrder verifies corrected values are
// non-decreasing when the input p-values are sorted ascending
func TestBenjaminiHochberg_MonotoneInPValueOrder(t *testing.T) {
	pValues := []float64{0.9, 0.01, 0.04, 0.2, 0.03, 0.5, 0.001, 0.7}
	adjusted := benjaminiHochberg(pValues)

	order := make([]int, len(pValues))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return pValues[order[a]] < pValues[order[b]] })

	for i := 1; i < len(order); i++ {
		if adjusted[order[i]] < adjusted[order[i-1]] {
			t.Errorf("BH not monotone: adj(p=%v)=%v < adj(p=%v)=%v",
				pValues[order[i]], adjusted[order[i]], pValues[order[i-1]], adjusted[order[i-1]])
		}
	}

	for i, adj := range adjusted {
		if adj < pValues[i] {
			t.Errorf("adjusted %d = %v below raw p-value %v", i, adj, pValues[i])
		}
		if adj > 1 {
			t.Errorf("adjusted %d = %v above 1", i, adj)
		}
	}
}

// TestBenjaminiHochberg_SingleHypothesis verifies FDR equals the p-value when
// only one feature is tested
func TestBenjaminiHochberg_SingleHypothesis(t *testing.T) {
	adjusted := benjaminiHochberg([]float64{0.034})
	if adjusted[0] != 0.034 {
		t.Errorf("single-hypothesis FDR = %v, want 0.034", adjusted[0])
	}
}

// TestComputePValues_SharedPool verifies every feature is judged against the
// same pooled null, not a per-feature null
func TestComputePValues_SharedPool(t *testing.T) {
	pool := []float64{-1, -0.5, 0, 0.5, 1}

	// Two features with the same observed score must get the same p-value
	pValues, fdrs := computePValuesAndFDRs([]float64{0.25, 0.25}, pool)
	if pValues[0] != pValues[1] {
		t.Errorf("same score, different p-values: %v vs %v", pValues[0], pValues[1])
	}
	if fdrs[0] != fdrs[1] {
		t.Errorf("same score, different FDRs: %v vs %v", fdrs[0], fdrs[1])
	}
	if math.IsNaN(fdrs[0]) || fdrs[0] <= 0 || fdrs[0] > 1 {
		t.Errorf("FDR out of range: %v", fdrs[0])
	}
}
