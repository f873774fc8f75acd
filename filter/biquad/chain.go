package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// The birdsong decoder uses identical lowpass sections in cascade to
// steepen rolloff without changing per-section coefficients.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// NewUniformChain creates a cascade of stages identical sections.
func NewUniformChain(c Coefficients, stages int) *Chain {
	if stages < 1 {
		stages = 1
	}

	chain := &Chain{sections: make([]Section, stages)}
	for i := range chain.sections {
		chain.sections[i].Coefficients = c
	}

	return chain
}

// ProcessSample cascades input through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}
