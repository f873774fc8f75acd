package birdsong

import (
	"errors"
	"testing"
)

func TestPresetTablesValid(t *testing.T) {
	for _, rate := range []float64{22050, 44100, 48000} {
		for _, p := range EncodePresets {
			if err := p.Validate(rate); err != nil {
				t.Errorf("encode preset %s invalid at %v Hz: %v", p.ID, rate, err)
			}
		}
		for _, p := range DecodePresets {
			if err := p.Validate(rate); err != nil {
				t.Errorf("decode preset %s invalid at %v Hz: %v", p.ID, rate, err)
			}
		}
	}
}

func TestPresetIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range EncodePresets {
		if seen[p.ID] {
			t.Errorf("duplicate encode preset ID %q", p.ID)
		}
		seen[p.ID] = true
	}

	seen = map[string]bool{}
	for _, p := range DecodePresets {
		if seen[p.ID] {
			t.Errorf("duplicate decode preset ID %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestPresetCyclingWrapsAround(t *testing.T) {
	i := 0
	for range EncodePresets {
		i = NextEncodePreset(i)
	}
	if i != 0 {
		t.Fatalf("cycling forward %d times ended at %d, want 0", len(EncodePresets), i)
	}

	i = 0
	for range DecodePresets {
		i = PrevDecodePreset(i)
	}
	if i != 0 {
		t.Fatalf("cycling backward %d times ended at %d, want 0", len(DecodePresets), i)
	}
}

func TestPresetCyclingInverse(t *testing.T) {
	for i := range EncodePresets {
		if got := PrevEncodePreset(NextEncodePreset(i)); got != i {
			t.Errorf("Prev(Next(%d)) = %d", i, got)
		}
	}
	for i := range DecodePresets {
		if got := NextDecodePreset(PrevDecodePreset(i)); got != i {
			t.Errorf("Next(Prev(%d)) = %d", i, got)
		}
	}
}

func TestPresetByID(t *testing.T) {
	p, ok := EncodePresetByID("sparrow")
	if !ok || p.ID != "sparrow" {
		t.Fatalf("EncodePresetByID(sparrow) = %+v, %v", p, ok)
	}

	if _, ok := EncodePresetByID("no-such-bird"); ok {
		t.Fatal("unknown ID must not resolve")
	}

	d, ok := DecodePresetByID("standard")
	if !ok || d.ID != "standard" {
		t.Fatalf("DecodePresetByID(standard) = %+v, %v", d, ok)
	}
}

func TestEncodePresetValidation(t *testing.T) {
	cases := []struct {
		name   string
		preset EncodePreset
	}{
		{"zero carrier", EncodePreset{CarrierBaseFreq: 0, PitchMultiplier: 1, InputLPFCutoff: 2000}},
		{"negative carrier", EncodePreset{CarrierBaseFreq: -100, PitchMultiplier: 1, InputLPFCutoff: 2000}},
		{"cutoff at nyquist", EncodePreset{CarrierBaseFreq: 3000, PitchMultiplier: 1, InputLPFCutoff: 22050}},
		{"cutoff above nyquist", EncodePreset{CarrierBaseFreq: 3000, PitchMultiplier: 1, InputLPFCutoff: 30000}},
		{"zero cutoff", EncodePreset{CarrierBaseFreq: 3000, PitchMultiplier: 1, InputLPFCutoff: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.preset.Validate(44100)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidPreset) {
				t.Fatalf("error %v does not wrap ErrInvalidPreset", err)
			}
		})
	}
}

func TestDecodePresetValidation(t *testing.T) {
	cases := []struct {
		name   string
		preset DecodePreset
	}{
		{"cutoff at nyquist", DecodePreset{LPFCutoff: 22050, FilterStages: 2, GainMultiplier: 4}},
		{"zero stages", DecodePreset{LPFCutoff: 2000, FilterStages: 0, GainMultiplier: 4}},
		{"negative stages", DecodePreset{LPFCutoff: 2000, FilterStages: -1, GainMultiplier: 4}},
		{"zero gain", DecodePreset{LPFCutoff: 2000, FilterStages: 2, GainMultiplier: 0}},
		{"negative gain", DecodePreset{LPFCutoff: 2000, FilterStages: 2, GainMultiplier: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.preset.Validate(44100)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidPreset) {
				t.Fatalf("error %v does not wrap ErrInvalidPreset", err)
			}
		})
	}
}

func TestInvalidPresetRejectedBeforeProcessing(t *testing.T) {
	in := speechBuffer(t, 1, 1024)

	bad := EncodePresets[0]
	bad.InputLPFCutoff = 30000
	if _, err := Encode(in, bad); !errors.Is(err, ErrInvalidPreset) {
		t.Fatalf("Encode error = %v, want ErrInvalidPreset", err)
	}

	badDec := DecodePresets[0]
	badDec.GainMultiplier = 0
	if _, err := Decode(in, badDec); !errors.Is(err, ErrInvalidPreset) {
		t.Fatalf("Decode error = %v, want ErrInvalidPreset", err)
	}
}
