//nolint:funcorder
package pitch

import (
	"fmt"
	"math"
)

// Fundamental search range in Hz. Lags outside the human voice range
// only waste cycles and attract formant-driven false positives.
const (
	MinFundamentalHz = 70
	MaxFundamentalHz = 400
)

// SilenceRMS is the gate threshold: windows quieter than this report an
// unvoiced estimate (0 Hz) and the caller holds the previous pitch.
const SilenceRMS = 0.02

// Tracker estimates the fundamental frequency of speech windows by
// time-domain autocorrelation. It is stateless across windows; the
// frame-to-frame smoothing lives in Curve.
type Tracker struct {
	sampleRate float64
	minLag     int
	maxLag     int
}

// NewTracker creates a Tracker for the given sample rate.
func NewTracker(sampleRate float64) (*Tracker, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("pitch: sample rate must be > 0 and finite: %f", sampleRate)
	}

	t := &Tracker{
		sampleRate: sampleRate,
		minLag:     int(sampleRate / MaxFundamentalHz),
		maxLag:     int(sampleRate / MinFundamentalHz),
	}
	if t.minLag < 1 {
		t.minLag = 1
	}

	return t, nil
}

// SampleRate returns the configured sample rate in Hz.
func (t *Tracker) SampleRate() float64 {
	return t.sampleRate
}

// Estimate returns the fundamental frequency of one analysis window in
// Hz, or 0 for an unvoiced/silent window.
//
// The estimate is the lag in [sampleRate/400, sampleRate/70] samples
// that maximizes the autocorrelation sum over the window, evaluated on
// every other sample for speed. Ties favor the shortest lag. Sub-sample
// precision is unnecessary: the result only steers a carrier offset.
func (t *Tracker) Estimate(window []float64) float64 {
	if rms(window) < SilenceRMS {
		return 0
	}

	bestLag := 0
	bestSum := 0.0

	for lag := t.minLag; lag <= t.maxLag; lag++ {
		sum := 0.0
		for i := 0; i+lag < len(window); i += 2 {
			sum += window[i] * window[i+lag]
		}

		if sum > bestSum {
			bestSum = sum
			bestLag = lag
		}
	}

	if bestLag == 0 {
		return 0
	}

	return t.sampleRate / float64(bestLag)
}

func rms(window []float64) float64 {
	if len(window) == 0 {
		return 0
	}

	sum := 0.0
	for _, x := range window {
		sum += x * x
	}

	return math.Sqrt(sum / float64(len(window)))
}
