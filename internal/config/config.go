package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"gomatch/domain/match"
	"gomatch/internal/errors"
)

// Environment variables recognized by Load
const (
	EnvNJobs         = "MATCH_N_JOBS"
	EnvNFeatures     = "MATCH_N_FEATURES"
	EnvNSamplings    = "MATCH_N_SAMPLINGS"
	EnvConfidence    = "MATCH_CONFIDENCE"
	EnvNPermutations = "MATCH_N_PERMUTATIONS"
	EnvRandomSeed    = "MATCH_RANDOM_SEED"
	EnvMissingPolicy = "MATCH_MISSING_POLICY"
)

// Load builds engine options from the environment, starting from the engine
// defaults. A .env file in the working directory is loaded when present.
func Load() (match.Options, error) {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	opts := match.DefaultOptions()

	if v := os.Getenv(EnvNJobs); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.ConfigInvalid(EnvNJobs + " must be an integer")
		}
		opts.NJobs = n
	}
	if v := os.Getenv(EnvNFeatures); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.ConfigInvalid(EnvNFeatures + " must be a number")
		}
		opts.NFeatures = f
	}
	if v := os.Getenv(EnvNSamplings); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.ConfigInvalid(EnvNSamplings + " must be an integer")
		}
		opts.NSamplings = n
	}
	if v := os.Getenv(EnvConfidence); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.ConfigInvalid(EnvConfidence + " must be a number")
		}
		opts.Confidence = f
	}
	if v := os.Getenv(EnvNPermutations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.ConfigInvalid(EnvNPermutations + " must be an integer")
		}
		opts.NPermutations = n
	}
	if v := os.Getenv(EnvRandomSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, errors.ConfigInvalid(EnvRandomSeed + " must be an integer")
		}
		opts.RandomSeed = n
	}
	if v := os.Getenv(EnvMissingPolicy); v != "" {
		opts.MissingPolicy = match.MissingValuePolicy(v)
	}

	return opts.Normalize()
}
