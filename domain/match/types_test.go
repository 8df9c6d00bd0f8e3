package match

import (
	"math"
	"testing"

	"gomatch/internal/errors"
)

// TestOptions_NormalizeDefaults verifies ambient fields are defaulted while
// resampling counts are honored as given
func TestOptions_NormalizeDefaults(t *testing.T) {
	opts, err := Options{}.Normalize()
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if opts.NJobs != 1 {
		t.Errorf("NJobs = %d, want 1", opts.NJobs)
	}
	if opts.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", opts.Confidence)
	}
	if opts.RandomSeed != DefaultRandomSeed {
		t.Errorf("RandomSeed = %d, want %d", opts.RandomSeed, DefaultRandomSeed)
	}
	if opts.MissingPolicy != MissingDropAll {
		t.Errorf("MissingPolicy = %q, want %q", opts.MissingPolicy, MissingDropAll)
	}
	// Zero counts are explicit degenerate configurations, not defaults
	if opts.NSamplings != 0 || opts.NPermutations != 0 {
		t.Errorf("resampling counts changed: %d, %d", opts.NSamplings, opts.NPermutations)
	}
}

// TestOptions_NormalizeRejectsInvalid verifies configuration validation
func TestOptions_NormalizeRejectsInvalid(t *testing.T) {
	cases := []Options{
		{NJobs: -2},
		{Confidence: 1.5},
		{Confidence: -0.1},
		{MissingPolicy: "some"},
	}
	for i, opts := range cases {
		if _, err := opts.Normalize(); err == nil {
			t.Errorf("case %d: expected config error", i)
		} else if errors.GetCode(err) != errors.CodeConfigInvalid {
			t.Errorf("case %d: code %s, want %s", i, errors.GetCode(err), errors.CodeConfigInvalid)
		}
	}
}

// TestValidateAligned verifies the engine preconditions
func TestValidateAligned(t *testing.T) {
	target := Target{1, 2, 3}

	if err := ValidateAligned(target, FeatureMatrix{{1, 2, 3}, {4, 5, 6}}); err != nil {
		t.Errorf("aligned inputs rejected: %v", err)
	}
	if err := ValidateAligned(Target{}, FeatureMatrix{{1}}); err == nil {
		t.Error("empty target accepted")
	}
	if err := ValidateAligned(target, FeatureMatrix{}); err == nil {
		t.Error("empty matrix accepted")
	}
	if err := ValidateAligned(target, FeatureMatrix{{1, 2}}); err == nil {
		t.Error("misaligned row accepted")
	}
}

// TestResultTable_Lifecycle verifies column-by-column population and NaN
// semantics for absent statistics
func TestResultTable_Lifecycle(t *testing.T) {
	table := NewResultTable(3, 0.95)
	for i, row := range table.Rows {
		if !math.IsNaN(row.Score) || row.HasCI() || row.HasSignificance() {
			t.Fatalf("row %d not empty at creation", i)
		}
	}

	table.SetScores([]float64{0.5, -0.2, 0.9})
	table.SetCI([]int{2}, []float64{0.07})
	table.SetSignificance([]float64{0.1, 0.8, 0.01}, []float64{0.15, 0.8, 0.03})

	if !table.Rows[2].HasCI() || table.Rows[2].CI != 0.07 {
		t.Error("selected feature missing CI")
	}
	if table.Rows[0].HasCI() || table.Rows[1].HasCI() {
		t.Error("unselected features should have no CI")
	}
	if table.Rows[2].PValue != 0.01 || table.Rows[2].FDR != 0.03 {
		t.Error("significance columns not populated")
	}
}

// TestResultTable_SortedIndices verifies rank ordering without mutation
func TestResultTable_SortedIndices(t *testing.T) {
	table := NewResultTable(4, 0.95)
	table.SetScores([]float64{0.5, -0.2, 0.9, 0.0})

	descending := table.SortedIndices(false)
	for i, want := range []int{2, 0, 3, 1} {
		if descending[i] != want {
			t.Fatalf("descending = %v", descending)
		}
	}

	ascending := table.SortedIndices(true)
	for i, want := range []int{1, 3, 0, 2} {
		if ascending[i] != want {
			t.Fatalf("ascending = %v", ascending)
		}
	}

	// Positional alignment untouched
	if table.Rows[0].Score != 0.5 {
		t.Error("sort mutated the table")
	}
}
