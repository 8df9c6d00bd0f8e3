package match

import (
	"testing"
)

// TestSelectTopBottom_CountMode verifies the top/bottom split for a count
// threshold
func TestSelectTopBottom_CountMode(t *testing.T) {
	scores := []float64{5, 1, 9, 3, 7}

	// n=3: top ceil(3/2)=2 (scores 9, 7), bottom floor(3/2)=1 (score 1)
	selected := SelectTopBottom(scores, 3)
	want := []int{1, 2, 4}
	if len(selected) != len(want) {
		t.Fatalf("selected %v, want %v", selected, want)
	}
	for i := range want {
		if selected[i] != want[i] {
			t.Fatalf("selected %v, want %v", selected, want)
		}
	}
}

// TestSelectTopBottom_CountLargerThanFeatures verifies the selection caps at
// the feature count
func TestSelectTopBottom_CountLargerThanFeatures(t *testing.T) {
	scores := []float64{2, 8, 4}
	selected := SelectTopBottom(scores, 10)
	if len(selected) != 3 {
		t.Fatalf("selected %d features, want all 3", len(selected))
	}
}

// TestSelectTopBottom_PercentileMode verifies tail selection for a fractional
// threshold
func TestSelectTopBottom_PercentileMode(t *testing.T) {
	scores := make([]float64, 100)
	for i := range scores {
		scores[i] = float64(i)
	}

	selected := SelectTopBottom(scores, 0.95)
	if len(selected) == 0 {
		t.Fatal("expected tail features selected")
	}

	// Both extremes are always in their tails
	hasMin, hasMax := false, false
	for _, idx := range selected {
		if idx == 0 {
			hasMin = true
		}
		if idx == 99 {
			hasMax = true
		}
		if idx > 10 && idx < 90 {
			t.Errorf("index %d is not in either 5%% tail", idx)
		}
	}
	if !hasMin || !hasMax {
		t.Error("extreme features missing from tail selection")
	}
}

// TestSelectTopBottom_Idempotent verifies selecting twice yields the same
// index set
func TestSelectTopBottom_Idempotent(t *testing.T) {
	scores := []float64{0.3, -0.8, 0.9, 0.1, -0.2, 0.5}

	for _, threshold := range []float64{4, 0.8} {
		first := SelectTopBottom(scores, threshold)
		second := SelectTopBottom(scores, threshold)
		if len(first) != len(second) {
			t.Fatalf("threshold %v: set size changed: %v vs %v", threshold, first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("threshold %v: set changed: %v vs %v", threshold, first, second)
			}
		}
	}
}

// TestSelectTopBottom_Unset verifies no selection for a non-positive
// threshold
func TestSelectTopBottom_Unset(t *testing.T) {
	if got := SelectTopBottom([]float64{1, 2, 3}, 0); got != nil {
		t.Errorf("threshold 0 selected %v, want none", got)
	}
	if got := SelectTopBottom([]float64{1, 2, 3}, -1); got != nil {
		t.Errorf("negative threshold selected %v, want none", got)
	}
	if got := SelectTopBottom(nil, 5); got != nil {
		t.Errorf("empty scores selected %v, want none", got)
	}
}
