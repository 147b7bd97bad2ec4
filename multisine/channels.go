package multisine

import (
	"fmt"
	"math"
)

// Mode selects how the per-channel signals relate to each other.
type Mode int

const (
	// ModeOrthogonal shares one feasible base signal across all channels,
	// offsetting channel i's phase by 2*pi*i/nrInputs elementwise.
	ModeOrthogonal Mode = iota
	// ModeRandom draws an independent feasible signal per channel.
	ModeRandom

	modeCount // sentinel for validation
)

var modeNames = [modeCount]string{"orthogonal", "random"}

// String returns the name of the mode.
func (m Mode) String() string {
	if m >= 0 && m < modeCount {
		return modeNames[m]
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m >= 0 && m < modeCount
}

// ParseMode converts the literal mode name ("orthogonal" or "random") to a Mode.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("multisine: %q: %w", name, ErrInvalidMode)
}

// synthesizeChannels generates one signal per input channel. Each returned
// row has length N; amp rows repeat the fixed band shape, phase and u rows
// hold the per-channel accepted draw.
func (s *Synthesizer) synthesizeChannels(nrInputs int, mode Mode) (amp, phase, u [][]float64, err error) {
	n := s.cfg.Length

	amp = make([][]float64, nrInputs)
	phase = make([][]float64, nrInputs)
	u = make([][]float64, nrInputs)

	for i := range amp {
		amp[i] = make([]float64, n)
		phase[i] = make([]float64, n)
		u[i] = make([]float64, n)
		copy(amp[i], s.shape)
	}

	spec := make([]complex128, n)
	scratch := make([]complex128, n)

	switch mode {
	case ModeOrthogonal:
		basePhase := make([]float64, n)
		baseU := make([]float64, n)

		err = s.findFeasible(basePhase, baseU, spec, scratch)
		if err != nil {
			return nil, nil, nil, err
		}

		for i := range phase {
			shift := 2 * math.Pi * float64(i) / float64(nrInputs)
			for k := range phase[i] {
				phase[i][k] = basePhase[k] + shift
			}

			buildSpectrum(spec, amp[i], phase[i])

			err = s.timeDomain(u[i], scratch, spec)
			if err != nil {
				return nil, nil, nil, err
			}

			err = normalize(u[i])
			if err != nil {
				return nil, nil, nil, err
			}

			// Only the base signal passed the feasibility search; the
			// shifted realizations are re-checked solely on request.
			if s.opts.verifyChannels && math.Abs(u[i][0]-u[i][1]) > s.cfg.Tolerance {
				return nil, nil, nil, fmt.Errorf("multisine: channel %d: %w", i, ErrChannelInfeasible)
			}
		}

	case ModeRandom:
		for i := range phase {
			err = s.findFeasible(phase[i], u[i], spec, scratch)
			if err != nil {
				return nil, nil, nil, err
			}
		}

	default:
		return nil, nil, nil, fmt.Errorf("multisine: %s: %w", mode, ErrInvalidMode)
	}

	return amp, phase, u, nil
}
