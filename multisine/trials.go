package multisine

// TrialBank holds the outputs of [Synthesizer.SynthesizeTrials].
//
// Amp, Phase and Signal are indexed [channel][trial][sample]. Repeated is
// indexed [channel][sample]: for each trial in order, its unit-peak signal
// appears p times back to back, giving m*p*N samples per channel.
//
// All slices are freshly allocated per call and never retained by the
// synthesizer, so a consumer may hold them across its own operations.
type TrialBank struct {
	Amp      [][][]float64
	Phase    [][][]float64
	Signal   [][][]float64
	Repeated [][]float64
}

// SynthesizeTrials generates m independent multi-channel trials and tiles
// each trial's signal p times into the repeated playback sequence.
//
// Every feasibility-checked signal satisfies max|u| = 1 and
// |u[0]-u[1]| <= Tolerance. The whole call fails without partial results if
// any trial fails. A [WithProgress] callback fires after each trial.
func (s *Synthesizer) SynthesizeTrials(m, p, nrInputs int, mode Mode) (*TrialBank, error) {
	if m < 1 {
		return nil, ErrInvalidTrials
	}

	if p < 1 {
		return nil, ErrInvalidRepeats
	}

	if nrInputs < 1 {
		return nil, ErrInvalidInputs
	}

	if !mode.Valid() {
		return nil, ErrInvalidMode
	}

	bank := &TrialBank{
		Amp:    make([][][]float64, nrInputs),
		Phase:  make([][][]float64, nrInputs),
		Signal: make([][][]float64, nrInputs),
	}

	for c := 0; c < nrInputs; c++ {
		bank.Amp[c] = make([][]float64, m)
		bank.Phase[c] = make([][]float64, m)
		bank.Signal[c] = make([][]float64, m)
	}

	for j := 0; j < m; j++ {
		amp, phase, u, err := s.synthesizeChannels(nrInputs, mode)
		if err != nil {
			return nil, err
		}

		for c := 0; c < nrInputs; c++ {
			bank.Amp[c][j] = amp[c]
			bank.Phase[c][j] = phase[c]
			bank.Signal[c][j] = u[c]
		}

		if s.opts.progress != nil {
			s.opts.progress(j+1, m)
		}
	}

	bank.Repeated = repeatSignals(bank.Signal, p)

	return bank, nil
}

// repeatSignals tiles each trial's signal p times along the time axis and
// concatenates the trials, per channel.
func repeatSignals(u [][][]float64, p int) [][]float64 {
	out := make([][]float64, len(u))

	for c, trials := range u {
		m := len(trials)

		var n int
		if m > 0 {
			n = len(trials[0])
		}

		row := make([]float64, m*p*n)
		for j, trial := range trials {
			for k := 0; k < p; k++ {
				copy(row[(j*p+k)*n:(j*p+k+1)*n], trial)
			}
		}

		out[c] = row
	}

	return out
}
