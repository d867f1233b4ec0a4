package jobq

import (
	"math"
	"math/rand/v2"
	"time"
)

// BackoffConfig controls the retry delay computed by Settler on failure.
type BackoffConfig struct {
	// Base is the exponentiation base (config key backoff_base, default 2).
	Base uint32

	// MaxInterval optionally clamps the computed delay. Zero means
	// unbounded growth, which is the documented reference behavior
	// (spec §4.4 Backoff semantics).
	MaxInterval time.Duration

	// RandomizationFactor, if > 0, jitters the computed delay by +/- that
	// fraction. Zero (the default) reproduces the reference "no jitter"
	// behavior exactly.
	RandomizationFactor float64
}

// Backoff computes backoff_base^attempt seconds for failure number attempt
// (1-indexed, the new post-failure attempt count), per spec §4.4 and
// property P8. It is exported so store implementations, which own the
// retry-delay decision at settle time, can share this computation instead
// of reimplementing it.
func Backoff(cfg BackoffConfig, attempt uint32) time.Duration {
	base := cfg.Base
	if base == 0 {
		base = 2
	}
	delay := time.Duration(math.Pow(float64(base), float64(attempt))) * time.Second
	if cfg.MaxInterval > 0 && delay > cfg.MaxInterval {
		delay = cfg.MaxInterval
	}
	if cfg.RandomizationFactor > 0 {
		exp := float64(delay)
		delta := cfg.RandomizationFactor * exp
		minExp := exp - delta
		maxExp := exp + delta
		delay = time.Duration(minExp + rand.Float64()*(maxExp-minExp))
	}
	return delay
}
