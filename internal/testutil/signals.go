// Package testutil provides deterministic signal generators and
// comparison helpers for birdsong engine tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"
)

// Sine generates a deterministic sine wave.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// SpeechTone generates a crude stand-in for voiced speech: a
// fundamental with two harmonics, amplitude-modulated at a syllable-ish
// rate. Good enough to exercise the pitch gate and envelope recovery.
func SpeechTone(f0, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	w := 2 * math.Pi * f0 / sampleRate
	wMod := 2 * math.Pi * 4.0 / sampleRate

	for i := range out {
		t := float64(i)
		harm := math.Sin(w*t) + 0.5*math.Sin(2*w*t) + 0.25*math.Sin(3*w*t)
		env := 0.6 + 0.4*math.Sin(wMod*t)
		out[i] = amplitude * env * harm / 1.75
	}
	return out
}

// Silence returns an all-zero signal.
func Silence(length int) []float64 {
	return make([]float64, length)
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbs returns the largest absolute value in data.
func MaxAbs(data []float64) float64 {
	m := 0.0
	for _, v := range data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
