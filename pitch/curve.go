package pitch

// Analysis framing. The window matches the encoder's FFT-sized frame;
// the hop sets how often the carrier offset may move.
const (
	AnalysisWindow = 1024
	AnalysisHop    = 256
)

// Smoothing factors for the frame-to-frame exponential hold. Without
// smoothing the carrier frequency jumps at every analysis frame and the
// modulated output clicks audibly.
const (
	smoothPrev = 0.8
	smoothNew  = 0.2
)

// Curve builds one fundamental-frequency value per input sample from a
// mono signal. Each analysis step contributes a single estimate held
// constant across the step (zero-order hold) and smoothed against the
// previous value: pitch = 0.8*previous + 0.2*new when voiced, previous
// unchanged when the silence gate reports 0.
//
// The returned slice has len(mono) entries and is read-only shared
// across every channel of an encode pass.
func (t *Tracker) Curve(mono []float64) []float64 {
	curve := make([]float64, len(mono))
	if len(mono) == 0 {
		return curve
	}

	smoothed := 0.0

	for start := 0; start < len(mono); start += AnalysisHop {
		end := start + AnalysisWindow
		if end > len(mono) {
			end = len(mono)
		}

		estimate := t.Estimate(mono[start:end])
		if estimate > 0 {
			smoothed = smoothPrev*smoothed + smoothNew*estimate
		}

		fillEnd := start + AnalysisHop
		if fillEnd > len(mono) {
			fillEnd = len(mono)
		}
		for i := start; i < fillEnd; i++ {
			curve[i] = smoothed
		}
	}

	return curve
}
