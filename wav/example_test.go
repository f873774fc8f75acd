package wav_test

import (
	"fmt"

	"github.com/cwbudde/algo-birdsong/audio"
	"github.com/cwbudde/algo-birdsong/wav"
)

func ExampleEncode() {
	buf, _ := audio.New(44100, 2, 1000)

	data := wav.Encode(buf)

	fmt.Printf("bytes: %d\n", len(data))
	fmt.Printf("signature: %s %s\n", data[0:4], data[8:12])

	decoded, err := wav.Decode(data)
	if err != nil {
		panic(err)
	}
	fmt.Printf("rate: %d, channels: %d, frames: %d\n",
		decoded.SampleRate(), decoded.NumChannels(), decoded.Frames())
	// Output:
	// bytes: 4044
	// signature: RIFF WAVE
	// rate: 44100, channels: 2, frames: 1000
}
