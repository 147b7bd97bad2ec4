package multisine

import (
	"fmt"
	"math"
	"math/rand/v2"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Config holds the immutable synthesis parameters.
type Config struct {
	BandLow    float64 // lower excited frequency in Hz, must sit on the frequency stamp
	BandHigh   float64 // upper excited frequency in Hz, must sit on the frequency stamp
	SampleRate float64 // sampling frequency in Hz
	Length     int     // points per signal period
	Amplitude  float64 // frequency-domain amplitude of the excited bins
	Tolerance  float64 // cyclicity tolerance on |u[0] - u[1]|
}

// DefaultConfig returns a ready-to-use parameter set: a 0-5 Hz band sampled
// at 100 Hz with 100 points, amplitude 100 and tolerance 0.1.
func DefaultConfig() Config {
	return Config{
		BandLow:    0,
		BandHigh:   5,
		SampleRate: 100,
		Length:     100,
		Amplitude:  100,
		Tolerance:  0.1,
	}
}

// Validate checks that the Config parameters are valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 || math.IsNaN(c.SampleRate) || math.IsInf(c.SampleRate, 0) {
		return ErrInvalidSampleRate
	}

	if c.Length <= 0 {
		return ErrInvalidLength
	}

	if c.Amplitude <= 0 || math.IsNaN(c.Amplitude) || math.IsInf(c.Amplitude, 0) {
		return ErrInvalidAmplitude
	}

	if c.Tolerance <= 0 || math.IsNaN(c.Tolerance) {
		return ErrInvalidTolerance
	}

	if c.BandLow >= c.BandHigh {
		return ErrBandOrder
	}

	return nil
}

// Synthesizer generates multisine excitation signals with random phases.
// It is safe to reuse across SynthesizeTrials calls; it is not safe for
// concurrent use because phase draws share one random stream.
type Synthesizer struct {
	cfg    Config
	opts   config
	stamps *Stamps
	plan   *algofft.Plan[complex128]
	rng    *rand.Rand
	shape  []float64 // band-limited amplitude, fixed for the synthesizer's lifetime
}

// New creates a Synthesizer for the given configuration.
func New(cfg Config, opts ...Option) (*Synthesizer, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	options := defaultOptions()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&options)
		if err != nil {
			return nil, err
		}
	}

	stamps, err := newStamps(cfg, options.snapTolerance)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.Length)
	if err != nil {
		return nil, fmt.Errorf("multisine: failed to create FFT plan: %w", err)
	}

	rng := options.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &Synthesizer{
		cfg:    cfg,
		opts:   options,
		stamps: stamps,
		plan:   plan,
		rng:    rng,
		shape:  amplitudeShape(cfg.Length, cfg.Amplitude, stamps.Band),
	}

	if vecmath.MaxAbs(s.shape) == 0 {
		// The band collapsed onto the DC bin, so every realization
		// would be identically zero.
		return nil, ErrDegenerateSignal
	}

	return s, nil
}

// Config returns the synthesis configuration.
func (s *Synthesizer) Config() Config {
	return s.cfg
}

// Resolution returns the frequency resolution F/N in Hz.
func (s *Synthesizer) Resolution() float64 {
	return s.stamps.DF
}

// Duration returns the duration of one signal period in seconds.
func (s *Synthesizer) Duration() float64 {
	return s.stamps.T
}

// Band returns the index pair of the excited band on the frequency stamp.
func (s *Synthesizer) Band() BandIndex {
	return s.stamps.Band
}

// TimeStamp returns a copy of the time stamp, Time[i] = i/F.
func (s *Synthesizer) TimeStamp() []float64 {
	out := make([]float64, len(s.stamps.Time))
	copy(out, s.stamps.Time)

	return out
}

// FreqStamp returns a copy of the frequency stamp, Freq[i] = i*F/N.
func (s *Synthesizer) FreqStamp() []float64 {
	out := make([]float64, len(s.stamps.Freq))
	copy(out, s.stamps.Freq)

	return out
}

// amplitudeShape builds the frequency-domain amplitude vector: amp on the
// excited band (inclusive), zero elsewhere, DC bin forced to zero.
func amplitudeShape(n int, amp float64, band BandIndex) []float64 {
	shape := make([]float64, n)
	for i := band.Lo; i <= band.Hi; i++ {
		shape[i] = amp
	}

	shape[0] = 0

	return shape
}

// randomPhase fills dst with independent uniform draws from [0, 2*pi).
func (s *Synthesizer) randomPhase(dst []float64) {
	for i := range dst {
		dst[i] = s.rng.Float64() * 2 * math.Pi
	}
}

// buildSpectrum assembles dst[i] = amp[i] * exp(j*phase[i]).
func buildSpectrum(dst []complex128, amp, phase []float64) {
	for i := range dst {
		sin, cos := math.Sincos(phase[i])
		dst[i] = complex(amp[i]*cos, amp[i]*sin)
	}
}

// timeDomain writes the real part of the inverse FFT of spec into dst,
// using scratch as the complex output buffer.
func (s *Synthesizer) timeDomain(dst []float64, scratch, spec []complex128) error {
	err := s.plan.Inverse(scratch, spec)
	if err != nil {
		return fmt.Errorf("multisine: inverse FFT failed: %w", err)
	}

	for i := range dst {
		dst[i] = real(scratch[i])
	}

	return nil
}

// normalize scales u in place to unit peak.
func normalize(u []float64) error {
	peak := vecmath.MaxAbs(u)
	if peak == 0 {
		return ErrDegenerateSignal
	}

	vecmath.ScaleBlockInPlace(u, 1/peak)

	return nil
}
