// Command birdsong hides speech inside a synthetic birdsong waveform
// and recovers it again.
//
// Usage:
//
//	birdsong encode in.wav out.wav [--preset sparrow]
//	birdsong decode in.wav out.wav [--preset standard]
//	birdsong presets
//
// Input files must be canonical PCM16 WAV; output is always PCM16 WAV.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-birdsong/audio"
	"github.com/cwbudde/algo-birdsong/birdsong"
	"github.com/cwbudde/algo-birdsong/wav"
)

type encodeCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Input WAV file (PCM16)"`
	Output string `arg:"" help:"Output WAV file"`
	Preset string `short:"p" default:"sparrow" help:"Encode preset ID (see 'birdsong presets')"`
}

func (c *encodeCmd) Run() error {
	preset, ok := birdsong.EncodePresetByID(c.Preset)
	if !ok {
		return fmt.Errorf("unknown encode preset %q", c.Preset)
	}

	in, err := readWAV(c.Input)
	if err != nil {
		return err
	}

	out, err := birdsong.Encode(in, preset)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.Output, wav.Encode(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}

	fmt.Printf("encoded %d frames x %d channels at %d Hz with preset %s\n",
		out.Frames(), out.NumChannels(), out.SampleRate(), preset.Name)

	return nil
}

type decodeCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Input WAV file (PCM16 birdsong)"`
	Output string `arg:"" help:"Output WAV file"`
	Preset string `short:"p" default:"standard" help:"Decode preset ID (see 'birdsong presets')"`
}

func (c *decodeCmd) Run() error {
	preset, ok := birdsong.DecodePresetByID(c.Preset)
	if !ok {
		return fmt.Errorf("unknown decode preset %q", c.Preset)
	}

	in, err := readWAV(c.Input)
	if err != nil {
		return err
	}

	out, err := birdsong.Decode(in, preset)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.Output, wav.Encode(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}

	fmt.Printf("decoded %d frames x %d channels at %d Hz with preset %s\n",
		out.Frames(), out.NumChannels(), out.SampleRate(), preset.Name)

	return nil
}

type presetsCmd struct{}

func (c *presetsCmd) Run() error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ENCODE\tNAME\tCARRIER\tPITCH x\tLPF\tDESCRIPTION")
	for _, p := range birdsong.EncodePresets {
		fmt.Fprintf(tw, "%s\t%s\t%.0f Hz\t%.1f\t%.0f Hz\t%s\n",
			p.ID, p.Name, p.CarrierBaseFreq, p.PitchMultiplier, p.InputLPFCutoff, p.Description)
	}

	fmt.Fprintln(tw, "\nDECODE\tNAME\tLPF\tSTAGES\tGAIN\tDESCRIPTION")
	for _, p := range birdsong.DecodePresets {
		fmt.Fprintf(tw, "%s\t%s\t%.0f Hz\t%d\t%.1f\t%s\n",
			p.ID, p.Name, p.LPFCutoff, p.FilterStages, p.GainMultiplier, p.Description)
	}

	return tw.Flush()
}

func readWAV(path string) (*audio.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	b, err := wav.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return b, nil
}

var cli struct {
	Encode  encodeCmd  `cmd:"" help:"Hide speech inside a birdsong waveform"`
	Decode  decodeCmd  `cmd:"" help:"Recover speech from a birdsong waveform"`
	Presets presetsCmd `cmd:"" help:"List encode and decode presets"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("birdsong"),
		kong.Description("Speech-in-birdsong steganographic audio coder"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
