package match

import (
	"fmt"
	"math"
	"sort"

	"gomatch/internal/errors"
)

// DefaultRandomSeed seeds every run that does not configure its own seed.
const DefaultRandomSeed int64 = 20121020

// MissingValuePolicy names the pairwise complete-case filtering applied
// upstream before the engine runs. The engine records it but never applies it.
type MissingValuePolicy string

const (
	MissingDropAll MissingValuePolicy = "all"
	MissingDropAny MissingValuePolicy = "any"
)

// Target is the dependent variable vector, one value per sample.
type Target []float64

// FeatureMatrix holds one candidate feature per row; columns are aligned 1:1
// with the Target's samples. Row order is the stable feature identity: scores,
// CI, p-values and FDR are positionally aligned to it.
type FeatureMatrix [][]float64

// NumFeatures returns the number of rows
func (m FeatureMatrix) NumFeatures() int {
	return len(m)
}

// NumSamples returns the column count of the first row (0 when empty)
func (m FeatureMatrix) NumSamples() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Rows returns a shallow view of the given feature rows, preserving order
func (m FeatureMatrix) Rows(indices []int) FeatureMatrix {
	sub := make(FeatureMatrix, len(indices))
	for i, idx := range indices {
		sub[i] = m[idx]
	}
	return sub
}

// ValidateAligned checks the sample-alignment preconditions shared by every
// engine phase. Violations are fatal, never retried.
func ValidateAligned(target Target, features FeatureMatrix) error {
	if len(target) == 0 {
		return errors.InvalidInput("target is empty")
	}
	if len(features) == 0 {
		return errors.InvalidInput("feature matrix is empty")
	}
	for i, row := range features {
		if len(row) != len(target) {
			return errors.InvalidInput(fmt.Sprintf(
				"feature row %d has %d samples, target has %d", i, len(row), len(target)))
		}
	}
	return nil
}

// Options configures one match run. The zero value normalizes to the engine
// defaults via Normalize.
type Options struct {
	NJobs         int                // worker count for parallel dispatch
	NFeatures     float64            // CI selection: count if >= 1, per-tail percentile if in (0,1), <= 0 skips CI
	NSamplings    int                // bootstrap rounds; CI skipped when < 2
	Confidence    float64            // CI confidence level in (0,1)
	NPermutations int                // permutation rounds; p-value/FDR skipped when < 1
	RandomSeed    int64              // reproducibility seed
	MissingPolicy MissingValuePolicy // recorded for the manifest; applied upstream
}

// DefaultOptions returns the canonical configuration
func DefaultOptions() Options {
	return Options{
		NJobs:         1,
		NFeatures:     0.95,
		NSamplings:    30,
		Confidence:    0.95,
		NPermutations: 30,
		RandomSeed:    DefaultRandomSeed,
		MissingPolicy: MissingDropAll,
	}
}

// Normalize fills unset fields with defaults and validates the rest
func (o Options) Normalize() (Options, error) {
	if o.NJobs == 0 {
		o.NJobs = 1
	}
	if o.NJobs < 0 {
		return o, errors.ConfigInvalid("n_jobs must be >= 1")
	}
	if o.Confidence == 0 {
		o.Confidence = 0.95
	}
	if o.Confidence <= 0 || o.Confidence >= 1 {
		return o, errors.ConfigInvalid("confidence must be in (0, 1)")
	}
	if o.RandomSeed == 0 {
		o.RandomSeed = DefaultRandomSeed
	}
	if o.MissingPolicy == "" {
		o.MissingPolicy = MissingDropAll
	}
	if o.MissingPolicy != MissingDropAll && o.MissingPolicy != MissingDropAny {
		return o, errors.ConfigInvalid("missing_value_policy must be \"all\" or \"any\"")
	}
	return o, nil
}

// Row is one feature's entry in the ResultTable. CI, PValue and FDR are NaN
// until the corresponding phase populates them; CI stays NaN for features
// outside the selected subset.
type Row struct {
	Score  float64 `json:"score"`
	CI     float64 `json:"ci"`
	PValue float64 `json:"p_value"`
	FDR    float64 `json:"fdr"`
}

// HasCI reports whether a confidence interval was computed for this feature
func (r Row) HasCI() bool {
	return !math.IsNaN(r.CI)
}

// HasSignificance reports whether p-value and FDR were computed
func (r Row) HasSignificance() bool {
	return !math.IsNaN(r.PValue)
}

// ResultTable holds one row per feature, positionally aligned with the
// FeatureMatrix. It is populated column-by-column (Score, then CI, then
// PValue/FDR) and never mutated after the pipeline completes.
type ResultTable struct {
	Rows       []Row   `json:"rows"`
	Confidence float64 `json:"confidence"`
}

// NewResultTable creates an empty table for n features with every statistic
// undefined
func NewResultTable(n int, confidence float64) *ResultTable {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			Score:  math.NaN(),
			CI:     math.NaN(),
			PValue: math.NaN(),
			FDR:    math.NaN(),
		}
	}
	return &ResultTable{Rows: rows, Confidence: confidence}
}

// SetScores populates the Score column
func (t *ResultTable) SetScores(scores []float64) {
	for i, s := range scores {
		t.Rows[i].Score = s
	}
}

// SetCI populates CI half-widths for the selected feature indices.
// widths[i] belongs to indices[i].
func (t *ResultTable) SetCI(indices []int, widths []float64) {
	for i, idx := range indices {
		t.Rows[idx].CI = widths[i]
	}
}

// SetSignificance populates the PValue and FDR columns
func (t *ResultTable) SetSignificance(pValues, fdrs []float64) {
	for i := range t.Rows {
		t.Rows[i].PValue = pValues[i]
		t.Rows[i].FDR = fdrs[i]
	}
}

// Scores returns the Score column in feature order
func (t *ResultTable) Scores() []float64 {
	scores := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		scores[i] = r.Score
	}
	return scores
}

// SortedIndices returns feature indices ranked by score without mutating the
// table's positional alignment
func (t *ResultTable) SortedIndices(ascending bool) []int {
	indices := make([]int, len(t.Rows))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		if ascending {
			return t.Rows[indices[a]].Score < t.Rows[indices[b]].Score
		}
		return t.Rows[indices[a]].Score > t.Rows[indices[b]].Score
	})
	return indices
}
