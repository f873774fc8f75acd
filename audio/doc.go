// Package audio provides the multi-channel float PCM buffer type shared by
// the birdsong encoder, decoder, and WAV serialization. All processing
// functions operate on raw []float64 channel planes; Buffer carries the
// sample rate and enforces equal frame counts across channels.
package audio
