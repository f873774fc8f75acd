// Package biquad provides the second-order IIR lowpass section used on
// both sides of the birdsong scheme: the encoder band-limits speech
// before modulation, the decoder cascades several sections to strip
// carrier ripple after rectification.
package biquad
