package birdsong

import (
	"math"

	"github.com/cwbudde/algo-birdsong/audio"
	"github.com/cwbudde/algo-birdsong/filter/biquad"
	"github.com/cwbudde/algo-birdsong/pitch"
)

// Modulation constants. The +1 envelope bias keeps the carrier
// multiplier non-negative almost always, so amplitude modulation rather
// than phase inversion dominates; 0.5 drive into tanh bounds the output
// to (-1, 1) without hard clipping.
const (
	inputGain       = 3.0
	modulationIndex = 0.8
	softClipDrive   = 0.5

	vibratoRate  = 0.001
	vibratoDepth = 50.0
)

// Encode converts speech into a birdsong waveform. The output buffer
// has the same sample rate, channel count, and frame count as the
// input. The computation is pure and deterministic: given the same
// buffer and preset it always produces the same result.
func Encode(buf *audio.Buffer, preset EncodePreset) (*audio.Buffer, error) {
	enc, err := NewEncoding(buf, preset)
	if err != nil {
		return nil, err
	}

	for !enc.ProcessChunk(enc.Remaining()) {
	}

	return enc.Result(), nil
}

// Encoding is the chunked form of Encode. A host that must stay
// responsive processes a bounded number of frames per call and yields
// between calls; the result is bit-identical to the one-shot form.
//
// An Encoding is single-use and not safe for concurrent use.
type Encoding struct {
	in     *audio.Buffer
	out    *audio.Buffer
	preset EncodePreset
	curve  []float64

	filters []*biquad.Section
	phases  []float64
	pos     int
}

// NewEncoding validates the preset, computes the shared pitch curve
// from the channel-averaged input, and prepares fresh per-channel
// filter and oscillator state.
func NewEncoding(buf *audio.Buffer, preset EncodePreset) (*Encoding, error) {
	if buf == nil {
		return nil, errNilBuffer
	}

	sampleRate := float64(buf.SampleRate())
	if err := preset.Validate(sampleRate); err != nil {
		return nil, err
	}

	tracker, err := pitch.NewTracker(sampleRate)
	if err != nil {
		return nil, err
	}

	out, err := audio.New(buf.SampleRate(), buf.NumChannels(), buf.Frames())
	if err != nil {
		return nil, err
	}

	lpf := biquad.Lowpass(preset.InputLPFCutoff, sampleRate)
	filters := make([]*biquad.Section, buf.NumChannels())
	for c := range filters {
		filters[c] = biquad.NewSection(lpf)
	}

	return &Encoding{
		in:      buf,
		out:     out,
		preset:  preset,
		curve:   tracker.Curve(buf.Downmix()),
		filters: filters,
		phases:  make([]float64, buf.NumChannels()),
	}, nil
}

// Remaining returns the number of frames not yet processed.
func (e *Encoding) Remaining() int {
	return e.in.Frames() - e.pos
}

// ProcessChunk encodes up to n frames on every channel and reports
// whether the encoding is complete. n <= 0 is a no-op that still
// reports completion state, so a zero-frame input completes
// immediately.
func (e *Encoding) ProcessChunk(n int) bool {
	end := e.pos + n
	if end > e.in.Frames() {
		end = e.in.Frames()
	}

	if end > e.pos {
		sampleRate := float64(e.in.SampleRate())
		for c := 0; c < e.in.NumChannels(); c++ {
			e.encodeChannel(c, e.pos, end, sampleRate)
		}
		e.pos = end
	}

	return e.pos >= e.in.Frames()
}

func (e *Encoding) encodeChannel(c, start, end int, sampleRate float64) {
	in := e.in.Channel(c)
	out := e.out.Channel(c)
	filt := e.filters[c]
	phase := e.phases[c]
	preset := e.preset

	for i := start; i < end; i++ {
		filtered := filt.ProcessSample(in[i])
		envelope := 1.0 + filtered*inputGain*modulationIndex

		carrierFreq := preset.CarrierBaseFreq + e.curve[i]*preset.PitchMultiplier
		phase += 2 * math.Pi * carrierFreq / sampleRate

		// Decorative warble only; the decoder never sees it because it
		// lives in the phase, not the envelope.
		vibrato := math.Sin(float64(i)*vibratoRate) * vibratoDepth

		out[i] = math.Tanh(softClipDrive * envelope * math.Sin(phase+vibrato))
	}

	e.phases[c] = phase
}

// Result returns the encoded buffer. It is only fully populated once
// ProcessChunk has reported completion.
func (e *Encoding) Result() *audio.Buffer {
	return e.out
}

// PitchCurve exposes the shared per-sample pitch estimate, read-only.
// Hosts use it for display; mutating it mid-encode corrupts the output.
func (e *Encoding) PitchCurve() []float64 {
	return e.curve
}
