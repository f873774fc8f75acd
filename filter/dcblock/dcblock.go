// Package dcblock removes constant offset with a single-pole high-pass.
// The birdsong decoder needs it because rectifying the AM waveform
// leaves the ~+1.0 envelope bias of the encoder's 1+modulation
// construction; without removal the recovered speech rides on a DC
// shelf and thumps on playback.
package dcblock

// DefaultR is the feedback coefficient of the blocker pole. 0.995 puts
// the -3 dB point around 35 Hz at 44.1 kHz, well below speech content.
const DefaultR = 0.995

// Blocker is a single-pole high-pass: y[n] = x[n] - x[n-1] + r*y[n-1].
// State is owned by one channel of one processing pass; construct fresh
// per channel per call.
type Blocker struct {
	r      float64
	prevIn float64
	prevY  float64
}

// New returns a Blocker with the given pole coefficient.
// Values outside (0, 1) fall back to DefaultR.
func New(r float64) *Blocker {
	if r <= 0 || r >= 1 {
		r = DefaultR
	}
	return &Blocker{r: r}
}

// ProcessSample removes DC from one input sample.
func (b *Blocker) ProcessSample(x float64) float64 {
	y := x - b.prevIn + b.r*b.prevY
	b.prevIn = x
	b.prevY = y

	return y
}

// ProcessBlock removes DC from a block of samples in-place.
func (b *Blocker) ProcessBlock(buf []float64) {
	r := b.r
	prevIn, prevY := b.prevIn, b.prevY

	for i, x := range buf {
		y := x - prevIn + r*prevY
		prevIn = x
		prevY = y
		buf[i] = y
	}

	b.prevIn, b.prevY = prevIn, prevY
}

// Reset clears the filter history.
func (b *Blocker) Reset() {
	b.prevIn = 0
	b.prevY = 0
}
