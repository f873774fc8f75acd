// Package birdsong hides intelligible speech inside a synthetic
// birdsong waveform and recovers it again.
//
// Encoding band-limits the speech, tracks its pitch, and uses the
// band-limited signal to amplitude-modulate a high-frequency carrier
// whose frequency follows the detected pitch. The result sounds like a
// chirping bird while carrying the speech in its amplitude envelope.
// Decoding rectifies the waveform, strips the carrier with a cascade of
// lowpass sections, removes the modulation bias, and applies makeup
// gain.
//
// The scheme is steganographic obfuscation, not encryption: anyone with
// the decoder and a roughly matching preset recovers the speech.
//
// All entry points are pure: every call builds fresh filter, oscillator,
// and pitch state, so concurrent calls need no synchronization.
package birdsong
