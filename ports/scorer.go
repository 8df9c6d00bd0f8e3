package ports

// ScoreFunc is the opaque association-scoring capability: it maps a target
// vector and one feature vector of equal length to a real-valued score.
//
// Implementations must be pure functions of their two arguments. The signature
// gives a scoring function no access to the engine's sampling streams, so the
// bootstrap and permutation random sequences cannot be perturbed by scoring.
// The isolation holds by construction rather than by saving and restoring
// generator state around each call.
//
// A returned error aborts the whole computation; a partially scored feature
// set would corrupt positional alignment.
type ScoreFunc func(target, feature []float64) (float64, error)
