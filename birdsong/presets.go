package birdsong

import (
	"fmt"

	"github.com/cwbudde/algo-birdsong/filter/biquad"
)

// EncodePreset is an immutable parameter set for the speech-to-birdsong
// direction. Callers pick one from EncodePresets by index or cycling;
// the exposed surface never constructs arbitrary values.
type EncodePreset struct {
	ID          string
	Name        string
	Description string

	// CarrierBaseFreq is the resting carrier frequency in Hz before any
	// pitch deviation is added.
	CarrierBaseFreq float64

	// PitchMultiplier scales the detected pitch before it is added to
	// the carrier base. Larger values chirp more dramatically.
	PitchMultiplier float64

	// InputLPFCutoff band-limits the speech before modulation so no
	// energy aliases once shifted onto the carrier.
	InputLPFCutoff float64
}

// DecodePreset is an immutable parameter set for the envelope-detection
// direction.
type DecodePreset struct {
	ID          string
	Name        string
	Description string

	// LPFCutoff is the cutoff of every cascaded lowpass section in Hz.
	LPFCutoff float64

	// FilterStages is the number of cascaded lowpass sections. More
	// stages reject the carrier harder at the cost of passband
	// flatness.
	FilterStages int

	// GainMultiplier is the makeup gain applied after DC blocking.
	GainMultiplier float64
}

// EncodePresets is the fixed, ordered encode preset table.
var EncodePresets = []EncodePreset{
	{
		ID:              "sparrow",
		Name:            "Sparrow",
		Description:     "Mid-band carrier with moderate chirp, the all-round default",
		CarrierBaseFreq: 3000,
		PitchMultiplier: 2.0,
		InputLPFCutoff:  2000,
	},
	{
		ID:              "canary",
		Name:            "Canary",
		Description:     "High carrier and wide pitch swing, bright and insistent",
		CarrierBaseFreq: 4500,
		PitchMultiplier: 3.0,
		InputLPFCutoff:  1800,
	},
	{
		ID:              "nightingale",
		Name:            "Nightingale",
		Description:     "Warm carrier with gentle chirp and extended speech band",
		CarrierBaseFreq: 3800,
		PitchMultiplier: 2.5,
		InputLPFCutoff:  2200,
	},
}

// DecodePresets is the fixed, ordered decode preset table.
var DecodePresets = []DecodePreset{
	{
		ID:             "standard",
		Name:           "Standard",
		Description:    "Balanced carrier rejection and speech clarity",
		LPFCutoff:      2000,
		FilterStages:   3,
		GainMultiplier: 4.0,
	},
	{
		ID:             "crisp",
		Name:           "Crisp",
		Description:    "Wider passband, keeps consonants at the cost of carrier ripple",
		LPFCutoff:      2500,
		FilterStages:   2,
		GainMultiplier: 3.0,
	},
	{
		ID:             "smooth",
		Name:           "Smooth",
		Description:    "Heavy carrier rejection for noisy recordings",
		LPFCutoff:      1500,
		FilterStages:   4,
		GainMultiplier: 5.0,
	},
}

// NextEncodePreset returns the index after i, wrapping past the end.
func NextEncodePreset(i int) int {
	return (i + 1) % len(EncodePresets)
}

// PrevEncodePreset returns the index before i, wrapping past the start.
func PrevEncodePreset(i int) int {
	return (i + len(EncodePresets) - 1) % len(EncodePresets)
}

// NextDecodePreset returns the index after i, wrapping past the end.
func NextDecodePreset(i int) int {
	return (i + 1) % len(DecodePresets)
}

// PrevDecodePreset returns the index before i, wrapping past the start.
func PrevDecodePreset(i int) int {
	return (i + len(DecodePresets) - 1) % len(DecodePresets)
}

// EncodePresetByID looks up an encode preset by its ID.
func EncodePresetByID(id string) (EncodePreset, bool) {
	for _, p := range EncodePresets {
		if p.ID == id {
			return p, true
		}
	}
	return EncodePreset{}, false
}

// DecodePresetByID looks up a decode preset by its ID.
func DecodePresetByID(id string) (DecodePreset, bool) {
	for _, p := range DecodePresets {
		if p.ID == id {
			return p, true
		}
	}
	return DecodePreset{}, false
}

// Validate checks the preset against the processing sample rate.
// All failures wrap ErrInvalidPreset.
func (p EncodePreset) Validate(sampleRate float64) error {
	if p.CarrierBaseFreq <= 0 {
		return fmt.Errorf("%w: carrier base frequency must be > 0: %f", ErrInvalidPreset, p.CarrierBaseFreq)
	}
	if !biquad.ValidCutoff(p.InputLPFCutoff, sampleRate) {
		return fmt.Errorf("%w: input lowpass cutoff must be between 0 and %f: %f",
			ErrInvalidPreset, sampleRate/2, p.InputLPFCutoff)
	}
	return nil
}

// Validate checks the preset against the processing sample rate.
// All failures wrap ErrInvalidPreset.
func (p DecodePreset) Validate(sampleRate float64) error {
	if !biquad.ValidCutoff(p.LPFCutoff, sampleRate) {
		return fmt.Errorf("%w: lowpass cutoff must be between 0 and %f: %f",
			ErrInvalidPreset, sampleRate/2, p.LPFCutoff)
	}
	if p.FilterStages < 1 {
		return fmt.Errorf("%w: filter stages must be >= 1: %d", ErrInvalidPreset, p.FilterStages)
	}
	if p.GainMultiplier <= 0 {
		return fmt.Errorf("%w: gain multiplier must be > 0: %f", ErrInvalidPreset, p.GainMultiplier)
	}
	return nil
}
