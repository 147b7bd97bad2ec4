package multisine

import (
	"fmt"
	"math"
)

// findFeasible draws fresh random phases until the normalized time-domain
// realization is cyclic within the configured tolerance. The amplitude shape
// is fixed, so only the phase varies between attempts. On success phase and
// u hold the accepted draw; spec and scratch are working buffers of length N.
//
// The attempt cap turns a never-satisfiable tolerance into
// [ErrSearchExhausted] instead of a hang.
func (s *Synthesizer) findFeasible(phase, u []float64, spec, scratch []complex128) error {
	for attempt := 0; attempt < s.opts.maxAttempts; attempt++ {
		s.randomPhase(phase)
		buildSpectrum(spec, s.shape, phase)

		err := s.timeDomain(u, scratch, spec)
		if err != nil {
			return err
		}

		err = normalize(u)
		if err != nil {
			return err
		}

		if math.Abs(u[0]-u[1]) <= s.cfg.Tolerance {
			return nil
		}
	}

	return fmt.Errorf("multisine: no cyclic signal within %d attempts: %w", s.opts.maxAttempts, ErrSearchExhausted)
}
