package multisine

import (
	"fmt"
	"math"
)

// BandIndex is the index pair of the excited band on the frequency stamp,
// inclusive on both ends.
type BandIndex struct {
	Lo int
	Hi int
}

// Stamps holds the grid quantities derived once from the sampling frequency
// and point count.
type Stamps struct {
	DF   float64   // frequency resolution F/N in Hz
	T    float64   // duration of one signal period 1/DF in seconds
	Time []float64 // Time[i] = i/F
	Freq []float64 // Freq[i] = i*F/N
	Band BandIndex
}

// newStamps derives the time and frequency stamps and locates the excited
// band on the frequency grid. snapTol == 0 requires bit-exact endpoint
// matches; snapTol > 0 accepts the nearest bin within snapTol Hz.
func newStamps(cfg Config, snapTol float64) (*Stamps, error) {
	n := cfg.Length
	df := cfg.SampleRate / float64(n)

	st := &Stamps{
		DF:   df,
		T:    1 / df,
		Time: make([]float64, n),
		Freq: make([]float64, n),
	}

	for i := range st.Time {
		st.Time[i] = float64(i) / cfg.SampleRate
		st.Freq[i] = float64(i) / float64(n) * cfg.SampleRate
	}

	lo, err := bandIndexOf(st.Freq, cfg.BandLow, snapTol)
	if err != nil {
		return nil, err
	}

	hi, err := bandIndexOf(st.Freq, cfg.BandHigh, snapTol)
	if err != nil {
		return nil, err
	}

	if lo >= hi {
		return nil, fmt.Errorf("multisine: band indices (%d, %d): %w", lo, hi, ErrBandOrder)
	}

	st.Band = BandIndex{Lo: lo, Hi: hi}

	return st, nil
}

// BandIndexFor locates lo and hi on a frequency stamp using exact matching.
// Consumers that only hold the stamp arrays (a plotting front end clipping
// its display range, for example) can recompute the band with it.
func BandIndexFor(fStamp []float64, lo, hi float64) (BandIndex, error) {
	iLo, err := bandIndexOf(fStamp, lo, 0)
	if err != nil {
		return BandIndex{}, err
	}

	iHi, err := bandIndexOf(fStamp, hi, 0)
	if err != nil {
		return BandIndex{}, err
	}

	if iLo >= iHi {
		return BandIndex{}, fmt.Errorf("multisine: band indices (%d, %d): %w", iLo, iHi, ErrBandOrder)
	}

	return BandIndex{Lo: iLo, Hi: iHi}, nil
}

func bandIndexOf(fStamp []float64, target, snapTol float64) (int, error) {
	if snapTol <= 0 {
		for i, f := range fStamp {
			if f == target {
				return i, nil
			}
		}

		return 0, fmt.Errorf("multisine: %g Hz: %w", target, ErrBandNotOnGrid)
	}

	best := -1
	bestDist := math.Inf(1)

	for i, f := range fStamp {
		d := math.Abs(f - target)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best < 0 || bestDist > snapTol {
		return 0, fmt.Errorf("multisine: %g Hz (nearest bin %g Hz away): %w", target, bestDist, ErrBandNotOnGrid)
	}

	return best, nil
}
