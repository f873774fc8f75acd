// Package tone measures simple tonal properties of a signal: dominant
// frequency via FFT peak search and RMS level. The birdsong tests use
// it to verify carrier placement; hosts can use it to drive a spectrum
// display.
package tone

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Dominant returns the frequency in Hz of the strongest spectral peak
// of the signal. The FFT size is the next power of two at or above
// len(signal); zero padding only interpolates the spectrum, it cannot
// move the peak bin materially for the tone lengths used here.
func Dominant(signal []float64, sampleRate float64) (float64, error) {
	if len(signal) == 0 {
		return 0, fmt.Errorf("tone: signal must not be empty")
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("tone: sample rate must be > 0 and finite: %f", sampleRate)
	}

	fftSize := nextPow2(len(signal))

	in := make([]complex128, fftSize)
	for i, x := range signal {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("tone: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("tone: fft: %w", err)
	}

	// Non-negative frequency bins only.
	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	// Skip DC; a decoded speech signal is DC-blocked anyway and the
	// encoder output has none worth reporting.
	peak := 1
	for i := 2; i < bins; i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}

	return float64(peak) * sampleRate / float64(fftSize), nil
}

// RMS returns the root-mean-square level of the signal, 0 for an empty
// slice.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	sum := 0.0
	for _, x := range signal {
		sum += x * x
	}

	return math.Sqrt(sum / float64(len(signal)))
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
