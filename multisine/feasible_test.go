package multisine

import (
	"errors"
	"math"
	"testing"
)

func TestFindFeasibleAcceptsCyclicSignal(t *testing.T) {
	s, err := New(DefaultConfig(), WithRNG(testRNG(3)))
	if err != nil {
		t.Fatal(err)
	}

	n := s.cfg.Length
	phase := make([]float64, n)
	u := make([]float64, n)
	spec := make([]complex128, n)
	scratch := make([]complex128, n)

	if err := s.findFeasible(phase, u, spec, scratch); err != nil {
		t.Fatal(err)
	}

	if diff := math.Abs(u[0] - u[1]); diff > s.cfg.Tolerance {
		t.Errorf("|u[0]-u[1]| = %g, want <= %g", diff, s.cfg.Tolerance)
	}

	peak := 0.0
	for _, v := range u {
		if math.Abs(v) > peak {
			peak = math.Abs(v)
		}
	}

	if math.Abs(peak-1) > 1e-12 {
		t.Errorf("peak = %g, want 1", peak)
	}

	for i, p := range phase {
		if p < 0 || p >= 2*math.Pi {
			t.Errorf("phase[%d] = %g, outside [0, 2*pi)", i, p)
		}
	}
}

func TestFindFeasibleExhaustsAttempts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tolerance = 1e-15 // virtually never satisfied by a random draw

	s, err := New(cfg, WithRNG(testRNG(5)), WithMaxAttempts(5))
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.SynthesizeTrials(1, 1, 1, ModeRandom)
	if !errors.Is(err, ErrSearchExhausted) {
		t.Errorf("SynthesizeTrials() = %v, want ErrSearchExhausted", err)
	}
}
