package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-birdsong/filter/biquad"
)

func ExampleSection_ProcessSample() {
	coeffs := biquad.Coefficients{B0: 0.5, B1: 0.2, B2: 0.1, A1: -0.4, A2: 0.08}
	section := biquad.NewSection(coeffs)

	impulse := []float64{1, 0, 0, 0}
	for _, x := range impulse {
		fmt.Printf("%.3f\n", section.ProcessSample(x))
	}
	// Output:
	// 0.500
	// 0.400
	// 0.220
	// 0.056
}

func ExampleNewUniformChain() {
	coeffs := biquad.Lowpass(2000, 44100)
	chain := biquad.NewUniformChain(coeffs, 3)

	fmt.Println(chain.NumSections())
	// Output:
	// 3
}
