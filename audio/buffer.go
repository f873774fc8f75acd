package audio

import (
	"fmt"
)

// Buffer holds multi-channel float64 PCM at a fixed sample rate.
// Channels are stored as separate planes of equal length. Samples are
// nominally in [-1, 1]; processing may transiently exceed that range,
// serialization clamps.
type Buffer struct {
	sampleRate int
	channels   [][]float64
}

// New returns a zero-filled Buffer with the given shape.
func New(sampleRate, channels, frames int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("audio: sample rate must be > 0: %d", sampleRate)
	}
	if channels < 1 {
		return nil, fmt.Errorf("audio: channel count must be >= 1: %d", channels)
	}
	if frames < 0 {
		return nil, fmt.Errorf("audio: frame count must be >= 0: %d", frames)
	}

	planes := make([][]float64, channels)
	backing := make([]float64, channels*frames)
	for c := range planes {
		planes[c] = backing[c*frames : (c+1)*frames : (c+1)*frames]
	}

	return &Buffer{sampleRate: sampleRate, channels: planes}, nil
}

// FromChannels wraps existing channel planes without copying.
// All planes must have equal length. Mutations through the slices are
// visible through the Buffer and vice versa.
func FromChannels(sampleRate int, channels [][]float64) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("audio: sample rate must be > 0: %d", sampleRate)
	}
	if len(channels) < 1 {
		return nil, fmt.Errorf("audio: channel count must be >= 1: %d", len(channels))
	}

	frames := len(channels[0])
	for c, ch := range channels {
		if len(ch) != frames {
			return nil, fmt.Errorf("audio: channel %d has %d frames, want %d", c, len(ch), frames)
		}
	}

	return &Buffer{sampleRate: sampleRate, channels: channels}, nil
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() int {
	return b.sampleRate
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int {
	return len(b.channels)
}

// Frames returns the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// Channel returns the sample plane for channel c.
func (b *Buffer) Channel(c int) []float64 {
	return b.channels[c]
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	planes := make([][]float64, len(b.channels))
	for c, ch := range b.channels {
		planes[c] = make([]float64, len(ch))
		copy(planes[c], ch)
	}
	return &Buffer{sampleRate: b.sampleRate, channels: planes}
}

// Downmix averages all channels into a freshly allocated mono plane.
// A single-channel buffer still returns a copy, so the result is always
// safe to mutate.
func (b *Buffer) Downmix() []float64 {
	frames := b.Frames()
	mono := make([]float64, frames)
	if frames == 0 {
		return mono
	}

	for _, ch := range b.channels {
		for i, x := range ch {
			mono[i] += x
		}
	}

	scale := 1.0 / float64(len(b.channels))
	for i := range mono {
		mono[i] *= scale
	}

	return mono
}
