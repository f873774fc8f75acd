package biquad

import "math"

// lowpassQ fixes the section quality factor to the maximally flat
// Butterworth response: alpha = sin(w0) / (2 * sqrt(2)).
const lowpassQ = 1 / math.Sqrt2

// Lowpass designs a second-order lowpass section at freq (Hz) using the
// RBJ bilinear-transform prototype with Q fixed at 1/sqrt(2). The
// coefficients are normalized so the feedforward terms sum to unit DC
// gain.
//
// Returns zero Coefficients (a silent filter) if freq is not strictly
// between 0 and sampleRate/2. Cutoff validation belongs to preset
// checking; this keeps the design function total.
func Lowpass(freq, sampleRate float64) Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return Coefficients{}
	}

	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * lowpassQ)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	norm := 1 / a0

	return Coefficients{
		B0: b0 * norm,
		B1: b1 * norm,
		B2: b2 * norm,
		A1: a1 * norm,
		A2: a2 * norm,
	}
}

// ValidCutoff reports whether freq is usable as a lowpass cutoff at the
// given sample rate (strictly between 0 and Nyquist).
func ValidCutoff(freq, sampleRate float64) bool {
	return sampleRate > 0 && freq > 0 && freq < sampleRate/2 &&
		!math.IsNaN(freq) && !math.IsInf(freq, 0)
}
