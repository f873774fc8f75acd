// Package xcorr provides the zero-lag normalized cross-correlation and
// envelope tracking used to judge birdsong round-trip intelligibility.
// The encode/decode chain shifts and filters the speech, so exact
// sample equality is meaningless; envelope correlation is the objective
// proxy.
package xcorr

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-birdsong/filter/biquad"
)

// Normalized returns the zero-lag normalized cross-correlation of a and
// b in [-1, 1]. Both slices must have the same nonzero length. Returns
// 0 if either signal has no energy.
func Normalized(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("xcorr: inputs must have equal nonzero length: %d vs %d", len(a), len(b))
	}

	var dot, ea, eb float64
	for i := range a {
		dot += a[i] * b[i]
		ea += a[i] * a[i]
		eb += b[i] * b[i]
	}

	if ea == 0 || eb == 0 {
		return 0, nil
	}

	return dot / math.Sqrt(ea*eb), nil
}

// Envelope tracks the amplitude contour of a signal: rectification
// followed by a second-order lowpass at cutoff Hz. The result has the
// same length as the input.
func Envelope(signal []float64, cutoff, sampleRate float64) []float64 {
	out := make([]float64, len(signal))
	filt := biquad.NewSection(biquad.Lowpass(cutoff, sampleRate))

	for i, x := range signal {
		out[i] = filt.ProcessSample(math.Abs(x))
	}

	return out
}
