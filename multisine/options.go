package multisine

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const defaultMaxAttempts = 10000

type config struct {
	rng            *rand.Rand
	maxAttempts    int
	snapTolerance  float64 // 0 means bit-exact band lookup
	verifyChannels bool
	progress       ProgressFunc
}

func defaultOptions() config {
	return config{
		maxAttempts: defaultMaxAttempts,
	}
}

// ProgressFunc reports trial-assembly progress: done trials out of total.
type ProgressFunc func(done, total int)

// Option configures a [Synthesizer].
type Option func(*config) error

// WithRNG sets a deterministic random number generator for reproducible
// phase draws.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}

// WithMaxAttempts caps the feasibility rejection-sampling loop (default 10000).
// When the cap is reached without an accepted draw, synthesis fails with
// [ErrSearchExhausted].
func WithMaxAttempts(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("multisine: max attempts must be >= 1: %d", n)
		}

		cfg.maxAttempts = n

		return nil
	}
}

// WithSnapTolerance switches the band-endpoint lookup from bit-exact matching
// to nearest-bin matching, accepting a bin within dHz of the requested
// endpoint. Without this option an endpoint must equal a frequency-stamp
// value exactly.
func WithSnapTolerance(dHz float64) Option {
	return func(cfg *config) error {
		if dHz <= 0 || math.IsNaN(dHz) || math.IsInf(dHz, 0) {
			return fmt.Errorf("multisine: snap tolerance must be > 0 and finite: %f", dHz)
		}

		cfg.snapTolerance = dHz

		return nil
	}
}

// WithChannelVerification re-checks the cyclicity condition on every
// phase-shifted channel in orthogonal mode (default off, matching the
// behavior of checking only the base signal). A failing channel aborts the
// whole call with [ErrChannelInfeasible].
func WithChannelVerification(enabled bool) Option {
	return func(cfg *config) error {
		cfg.verifyChannels = enabled
		return nil
	}
}

// WithProgress sets a callback invoked after each assembled trial.
func WithProgress(fn ProgressFunc) Option {
	return func(cfg *config) error {
		cfg.progress = fn
		return nil
	}
}
