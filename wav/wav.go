// Package wav serializes audio buffers as canonical uncompressed
// RIFF/WAVE with interleaved little-endian 16-bit PCM, and parses the
// same format back for file-based workflows. Encoding is the byte
// format persisted by the birdsong tools and must stay bit-for-bit
// stable for compatibility with existing recordings.
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-birdsong/audio"
)

// HeaderSize is the size of the canonical WAV header in bytes.
const HeaderSize = 44

// FormatPCM is the audio format tag for uncompressed PCM.
const FormatPCM = 1

const bitsPerSample = 16

// Int16 full-scale constants. Positive and negative samples scale by
// different constants so +1.0 and -1.0 map to the two int16 extremes.
// This asymmetry is load-bearing: existing recordings were produced
// with it and must re-serialize byte-identically.
const (
	fullScalePos = 32767
	fullScaleNeg = 32768
)

var (
	errTooShort    = errors.New("wav: data shorter than header")
	errNotRIFF     = errors.New("wav: missing RIFF/WAVE signature")
	errNoFmtChunk  = errors.New("wav: missing fmt chunk")
	errNoDataChunk = errors.New("wav: missing data chunk")
)

// Encode serializes the buffer as a WAV byte stream: a 44-byte header
// followed by channel-minor interleaved little-endian int16 samples.
// Samples are clamped to [-1, 1] before scaling. The result is a pure
// function of the buffer content.
func Encode(buf *audio.Buffer) []byte {
	channels := buf.NumChannels()
	frames := buf.Frames()
	dataSize := frames * channels * bitsPerSample / 8
	byteRate := buf.SampleRate() * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	out := make([]byte, HeaderSize+dataSize)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+dataSize))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], FormatPCM)
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(buf.SampleRate()))
	binary.LittleEndian.PutUint32(out[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], bitsPerSample)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(dataSize))

	pos := HeaderSize
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			binary.LittleEndian.PutUint16(out[pos:pos+2], uint16(quantize(buf.Channel(c)[i])))
			pos += 2
		}
	}

	return out
}

func quantize(s float64) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}

	if s >= 0 {
		return int16(s * fullScalePos)
	}

	return int16(s * fullScaleNeg)
}

// Decode parses a PCM16 WAV byte stream produced by Encode (or any
// canonical 16-bit PCM WAV) into a fresh buffer. It is a collaborator
// for file-based tooling, not a general container parser: compressed
// or non-16-bit formats are rejected.
func Decode(data []byte) (*audio.Buffer, error) {
	if len(data) < HeaderSize {
		return nil, errTooShort
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errNotRIFF
	}

	var (
		sampleRate int
		channels   int
		haveFmt    bool
		pcm        []byte
	)

	// Walk chunks; fmt and data may be preceded by others (LIST, fact).
	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		if size < 0 || body+size > len(data) {
			break
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, errNoFmtChunk
			}
			format := binary.LittleEndian.Uint16(data[body : body+2])
			if format != FormatPCM {
				return nil, fmt.Errorf("wav: unsupported format tag %d, want PCM", format)
			}
			bits := binary.LittleEndian.Uint16(data[body+14 : body+16])
			if bits != bitsPerSample {
				return nil, fmt.Errorf("wav: unsupported bit depth %d, want %d", bits, bitsPerSample)
			}
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			haveFmt = true
		case "data":
			pcm = data[body : body+size]
		}

		// Chunks are word-aligned.
		pos = body + size + size%2
	}

	if !haveFmt {
		return nil, errNoFmtChunk
	}
	if pcm == nil {
		return nil, errNoDataChunk
	}
	if channels < 1 {
		return nil, fmt.Errorf("wav: invalid channel count %d", channels)
	}

	frames := len(pcm) / (2 * channels)
	buf, err := audio.New(sampleRate, channels, frames)
	if err != nil {
		return nil, err
	}

	pos = 0
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			v := int16(binary.LittleEndian.Uint16(pcm[pos : pos+2]))
			buf.Channel(c)[i] = dequantize(v)
			pos += 2
		}
	}

	return buf, nil
}

func dequantize(v int16) float64 {
	if v >= 0 {
		return float64(v) / fullScalePos
	}

	return float64(v) / fullScaleNeg
}
