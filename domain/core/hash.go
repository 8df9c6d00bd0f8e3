package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// InputFingerprint identifies the exact numeric inputs of a run
type InputFingerprint Hash

func (h InputFingerprint) String() string { return Hash(h).String() }

// ComputeInputFingerprint hashes the target and feature matrix bit patterns.
// Identical inputs always produce the same fingerprint, so two manifests with
// equal fingerprints and seeds describe replays of the same computation.
func ComputeInputFingerprint(target []float64, features [][]float64) InputFingerprint {
	hasher := sha256.New()
	var buf [8]byte

	writeVector := func(v []float64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(v)))
		hasher.Write(buf[:])
		for _, x := range v {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
			hasher.Write(buf[:])
		}
	}

	writeVector(target)
	for _, row := range features {
		writeVector(row)
	}

	return InputFingerprint(hex.EncodeToString(hasher.Sum(nil)))
}
