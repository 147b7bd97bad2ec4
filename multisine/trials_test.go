package multisine

import (
	"errors"
	"math"
	"testing"
)

func TestSynthesizeTrialsShapes(t *testing.T) {
	// End-to-end case: F=100, N=100, band (0, 5), amp=100, eps=0.1;
	// two trials, three repeats, two channels.
	const (
		m        = 2
		p        = 3
		nrInputs = 2
		n        = 100
	)

	s, err := New(DefaultConfig(), WithRNG(testRNG(31)))
	if err != nil {
		t.Fatal(err)
	}

	bank, err := s.SynthesizeTrials(m, p, nrInputs, ModeOrthogonal)
	if err != nil {
		t.Fatal(err)
	}

	for _, arr := range [][][][]float64{bank.Amp, bank.Phase, bank.Signal} {
		if len(arr) != nrInputs {
			t.Fatalf("channel count = %d, want %d", len(arr), nrInputs)
		}

		for c := range arr {
			if len(arr[c]) != m {
				t.Fatalf("channel %d: trial count = %d, want %d", c, len(arr[c]), m)
			}

			for j := range arr[c] {
				if len(arr[c][j]) != n {
					t.Fatalf("channel %d trial %d: length = %d, want %d", c, j, len(arr[c][j]), n)
				}
			}
		}
	}

	if len(bank.Repeated) != nrInputs {
		t.Fatalf("repeated channel count = %d, want %d", len(bank.Repeated), nrInputs)
	}

	for c := range bank.Repeated {
		if len(bank.Repeated[c]) != m*p*n {
			t.Fatalf("channel %d: repeated length = %d, want %d", c, len(bank.Repeated[c]), m*p*n)
		}
	}

	// Two orthogonal channels differ by a phase shift of pi, which negates
	// the realization, so both channels keep unit peak and cyclicity.
	for c := 0; c < nrInputs; c++ {
		for j := 0; j < m; j++ {
			u := bank.Signal[c][j]

			peak := 0.0
			for _, v := range u {
				if math.Abs(v) > peak {
					peak = math.Abs(v)
				}
			}

			if math.Abs(peak-1) > 1e-12 {
				t.Errorf("channel %d trial %d: peak = %g, want 1", c, j, peak)
			}

			if diff := math.Abs(u[0] - u[1]); diff > 0.1 {
				t.Errorf("channel %d trial %d: |u[0]-u[1]| = %g, want <= 0.1", c, j, diff)
			}
		}
	}
}

func TestRepeatedTiling(t *testing.T) {
	const (
		m        = 2
		p        = 3
		nrInputs = 2
		n        = 100
	)

	s, err := New(DefaultConfig(), WithRNG(testRNG(37)))
	if err != nil {
		t.Fatal(err)
	}

	bank, err := s.SynthesizeTrials(m, p, nrInputs, ModeRandom)
	if err != nil {
		t.Fatal(err)
	}

	for c := 0; c < nrInputs; c++ {
		for j := 0; j < m; j++ {
			for k := 0; k < p; k++ {
				offset := (j*p + k) * n
				block := bank.Repeated[c][offset : offset+n]

				for i := range block {
					if block[i] != bank.Signal[c][j][i] {
						t.Fatalf("channel %d trial %d repeat %d: sample %d = %g, want %g",
							c, j, k, i, block[i], bank.Signal[c][j][i])
					}
				}
			}
		}
	}
}

func TestProgressCallback(t *testing.T) {
	const m = 3

	var calls [][2]int

	s, err := New(DefaultConfig(),
		WithRNG(testRNG(41)),
		WithProgress(func(done, total int) {
			calls = append(calls, [2]int{done, total})
		}))
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.SynthesizeTrials(m, 1, 1, ModeRandom)
	if err != nil {
		t.Fatal(err)
	}

	if len(calls) != m {
		t.Fatalf("progress calls = %d, want %d", len(calls), m)
	}

	for i, c := range calls {
		if c[0] != i+1 || c[1] != m {
			t.Errorf("call %d = (%d, %d), want (%d, %d)", i, c[0], c[1], i+1, m)
		}
	}
}

func TestSynthesizeTrialsValidation(t *testing.T) {
	s, err := New(DefaultConfig(), WithRNG(testRNG(1)))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		m, p, inputs int
		mode         Mode
		wantErr      error
	}{
		{"zero trials", 0, 1, 1, ModeRandom, ErrInvalidTrials},
		{"zero repeats", 1, 0, 1, ModeRandom, ErrInvalidRepeats},
		{"zero inputs", 1, 1, 0, ModeRandom, ErrInvalidInputs},
		{"unknown mode", 1, 1, 1, Mode(99), ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SynthesizeTrials(tt.m, tt.p, tt.inputs, tt.mode)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SynthesizeTrials() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
