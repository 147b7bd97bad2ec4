package multisine

import "errors"

// Errors returned by the multisine synthesizer.
var (
	ErrInvalidSampleRate = errors.New("multisine: sampling frequency must be positive")
	ErrInvalidLength     = errors.New("multisine: point count must be positive")
	ErrInvalidAmplitude  = errors.New("multisine: amplitude must be positive")
	ErrInvalidTolerance  = errors.New("multisine: tolerance must be positive")
	ErrBandOrder         = errors.New("multisine: band start must lie below band end")
	ErrBandNotOnGrid     = errors.New("multisine: band endpoint not on the frequency stamp")
	ErrDegenerateSignal  = errors.New("multisine: time-domain signal is identically zero")
	ErrSearchExhausted   = errors.New("multisine: feasibility search attempt limit reached")
	ErrChannelInfeasible = errors.New("multisine: phase-shifted channel failed the cyclicity check")
	ErrInvalidMode       = errors.New("multisine: invalid channel mode")
	ErrInvalidInputs     = errors.New("multisine: input channel count must be positive")
	ErrInvalidTrials     = errors.New("multisine: trial count must be positive")
	ErrInvalidRepeats    = errors.New("multisine: repeat count must be positive")
)
