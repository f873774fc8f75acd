package birdsong

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-birdsong/audio"
	"github.com/cwbudde/algo-birdsong/filter/biquad"
	"github.com/cwbudde/algo-birdsong/filter/dcblock"
)

// Decode recovers speech from a birdsong waveform: rectification pulls
// the message out of the amplitude envelope, the lowpass cascade strips
// carrier ripple, the DC blocker removes the envelope bias, and makeup
// gain restores level. No clipping is applied; that is left to
// serialization.
//
// Feeding arbitrary non-birdsong audio is not detected; it simply
// produces meaningless speech-like output.
func Decode(buf *audio.Buffer, preset DecodePreset) (*audio.Buffer, error) {
	dec, err := NewDecoding(buf, preset)
	if err != nil {
		return nil, err
	}

	for !dec.ProcessChunk(dec.Remaining()) {
	}

	return dec.Result(), nil
}

// Decoding is the chunked form of Decode, mirroring Encoding.
// Single-use, not safe for concurrent use.
type Decoding struct {
	in     *audio.Buffer
	out    *audio.Buffer
	preset DecodePreset

	chains   []*biquad.Chain
	blockers []*dcblock.Blocker
	pos      int
}

// NewDecoding validates the preset and prepares fresh per-channel
// filter cascades and DC blockers.
func NewDecoding(buf *audio.Buffer, preset DecodePreset) (*Decoding, error) {
	if buf == nil {
		return nil, errNilBuffer
	}

	sampleRate := float64(buf.SampleRate())
	if err := preset.Validate(sampleRate); err != nil {
		return nil, err
	}

	out, err := audio.New(buf.SampleRate(), buf.NumChannels(), buf.Frames())
	if err != nil {
		return nil, err
	}

	lpf := biquad.Lowpass(preset.LPFCutoff, sampleRate)
	chains := make([]*biquad.Chain, buf.NumChannels())
	blockers := make([]*dcblock.Blocker, buf.NumChannels())
	for c := range chains {
		chains[c] = biquad.NewUniformChain(lpf, preset.FilterStages)
		blockers[c] = dcblock.New(dcblock.DefaultR)
	}

	return &Decoding{
		in:       buf,
		out:      out,
		preset:   preset,
		chains:   chains,
		blockers: blockers,
	}, nil
}

// Remaining returns the number of frames not yet processed.
func (d *Decoding) Remaining() int {
	return d.in.Frames() - d.pos
}

// ProcessChunk decodes up to n frames on every channel and reports
// whether the decoding is complete.
func (d *Decoding) ProcessChunk(n int) bool {
	end := d.pos + n
	if end > d.in.Frames() {
		end = d.in.Frames()
	}

	if end > d.pos {
		for c := 0; c < d.in.NumChannels(); c++ {
			d.decodeChannel(c, d.pos, end)
		}
		d.pos = end
	}

	return d.pos >= d.in.Frames()
}

func (d *Decoding) decodeChannel(c, start, end int) {
	in := d.in.Channel(c)
	seg := d.out.Channel(c)[start:end]

	// Rectify into the output plane, then filter in place.
	for i := range seg {
		seg[i] = math.Abs(in[start+i])
	}

	d.chains[c].ProcessBlock(seg)
	d.blockers[c].ProcessBlock(seg)
	vecmath.ScaleBlock(seg, seg, d.preset.GainMultiplier)
}

// Result returns the decoded buffer. It is only fully populated once
// ProcessChunk has reported completion.
func (d *Decoding) Result() *audio.Buffer {
	return d.out
}
