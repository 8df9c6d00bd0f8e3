package run

import (
	"gomatch/domain/core"
	"gomatch/domain/match"
)

// MatchManifest is the audit record for one engine run: everything needed to
// replay the computation and to verify that a replay saw the same inputs.
// Equal fingerprints, options and seed mean bit-identical result tables.
type MatchManifest struct {
	RunID            core.RunID            `json:"run_id"`
	Seed             int64                 `json:"seed"`
	Options          match.Options         `json:"options"`
	NFeatures        int                   `json:"n_features"`
	NSamples         int                   `json:"n_samples"`
	InputFingerprint core.InputFingerprint `json:"input_fingerprint"`
	RuntimeMs        int64                 `json:"runtime_ms"`
	CreatedAt        core.Timestamp        `json:"created_at"`
}

// NewMatchManifest creates a manifest for the given inputs and normalized
// options
func NewMatchManifest(opts match.Options, target match.Target, features match.FeatureMatrix) *MatchManifest {
	return &MatchManifest{
		RunID:            core.NewRunID(),
		Seed:             opts.RandomSeed,
		Options:          opts,
		NFeatures:        features.NumFeatures(),
		NSamples:         len(target),
		InputFingerprint: core.ComputeInputFingerprint(target, features),
		CreatedAt:        core.Now(),
	}
}

// Replays reports whether another manifest describes a replay of the same
// computation
func (m *MatchManifest) Replays(other *MatchManifest) bool {
	return m.Seed == other.Seed &&
		m.Options == other.Options &&
		m.InputFingerprint == other.InputFingerprint
}
