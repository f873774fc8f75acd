// Package pitch estimates the fundamental frequency of speech by
// windowed autocorrelation and expands the frame-wise estimates into a
// smoothed per-sample curve. The curve steers the birdsong carrier
// oscillator, giving the encoded output its pitch-following chirp.
package pitch
