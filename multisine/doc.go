// Package multisine generates multi-channel multisine excitation signals
// for system-identification experiments.
//
// A multisine concentrates all excitation energy in a prescribed frequency
// band: every bin inside the band carries the same amplitude and an
// independently drawn random phase, the DC bin is forced to zero, and the
// time-domain realization is the real part of the inverse FFT, normalized
// to unit peak. Key properties:
//
//   - Flat amplitude spectrum over the excited band, zero elsewhere
//   - Random phases avoid the high crest factor of an in-phase multisine
//   - Accepted signals are near-cyclic: the first two samples differ by at
//     most a configurable tolerance, so repeated playback has no seam
//   - Channels are either phase-rotated copies of one base signal
//     (orthogonal mode) or fully independent draws (random mode)
//
// # Usage
//
// Configure a synthesizer once, then assemble trials:
//
//	syn, _ := multisine.New(multisine.Config{
//	    BandLow: 0, BandHigh: 5,
//	    SampleRate: 100, Length: 100,
//	    Amplitude: 100, Tolerance: 0.1,
//	})
//	bank, _ := syn.SynthesizeTrials(2, 3, 2, multisine.ModeOrthogonal)
//	// bank.Signal[channel][trial] is one unit-peak excitation period,
//	// bank.Repeated[channel] is the full playback sequence.
//
// Phase draws come from an injectable math/rand/v2 generator (WithRNG),
// so experiments are reproducible under a fixed seed.
package multisine
