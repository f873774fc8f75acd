package xcorr

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-birdsong/internal/testutil"
)

func TestNormalizedIdentical(t *testing.T) {
	a := testutil.Sine(440, 44100, 0.5, 4096)

	got, err := Normalized(a, a)
	if err != nil {
		t.Fatalf("Normalized: %v", err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("self-correlation = %v, want 1", got)
	}
}

func TestNormalizedInverted(t *testing.T) {
	a := testutil.Sine(440, 44100, 0.5, 4096)
	b := make([]float64, len(a))
	for i := range a {
		b[i] = -a[i]
	}

	got, err := Normalized(a, b)
	if err != nil {
		t.Fatalf("Normalized: %v", err)
	}
	if math.Abs(got+1) > 1e-12 {
		t.Fatalf("inverted correlation = %v, want -1", got)
	}
}

func TestNormalizedScaleInvariant(t *testing.T) {
	a := testutil.Noise(7, 0.5, 2048)
	b := make([]float64, len(a))
	for i := range a {
		b[i] = 3 * a[i]
	}

	got, err := Normalized(a, b)
	if err != nil {
		t.Fatalf("Normalized: %v", err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("scaled correlation = %v, want 1", got)
	}
}

func TestNormalizedUncorrelatedNoise(t *testing.T) {
	a := testutil.Noise(1, 0.5, 1<<15)
	b := testutil.Noise(2, 0.5, 1<<15)

	got, err := Normalized(a, b)
	if err != nil {
		t.Fatalf("Normalized: %v", err)
	}
	if math.Abs(got) > 0.05 {
		t.Fatalf("independent noise correlation = %v, want ~0", got)
	}
}

func TestNormalizedErrors(t *testing.T) {
	if _, err := Normalized(nil, nil); err == nil {
		t.Error("empty inputs must error")
	}
	if _, err := Normalized(make([]float64, 3), make([]float64, 4)); err == nil {
		t.Error("mismatched lengths must error")
	}
}

func TestNormalizedZeroEnergy(t *testing.T) {
	a := testutil.Silence(64)
	b := testutil.Sine(440, 44100, 0.5, 64)

	got, err := Normalized(a, b)
	if err != nil {
		t.Fatalf("Normalized: %v", err)
	}
	if got != 0 {
		t.Fatalf("zero-energy correlation = %v, want 0", got)
	}
}

func TestEnvelopeTracksModulator(t *testing.T) {
	const sampleRate = 44100

	// 2 kHz carrier amplitude-modulated at 5 Hz.
	n := 2 * sampleRate
	modulator := make([]float64, n)
	signal := make([]float64, n)
	for i := 0; i < n; i++ {
		ti := float64(i)
		modulator[i] = 0.6 + 0.4*math.Sin(2*math.Pi*5*ti/sampleRate)
		signal[i] = modulator[i] * math.Sin(2*math.Pi*2000*ti/sampleRate)
	}

	env := Envelope(signal, 30, sampleRate)

	corr, err := Normalized(env[sampleRate/4:], modulator[sampleRate/4:])
	if err != nil {
		t.Fatalf("Normalized: %v", err)
	}
	if corr < 0.9 {
		t.Fatalf("envelope/modulator correlation = %v, want > 0.9", corr)
	}
}

func TestEnvelopeLength(t *testing.T) {
	if got := len(Envelope(testutil.Sine(440, 44100, 1, 123), 30, 44100)); got != 123 {
		t.Fatalf("envelope length = %d, want 123", got)
	}
}
