package adapters

import "math/rand/v2"

// UniformJitter implements ports.JitterSource with a uniform ±10% draw.
// It uses the top-level math/rand/v2 generator, which is safe for
// concurrent use, so requests never share per-call seed state.
type UniformJitter struct{}

// NewUniformJitter creates a new UniformJitter.
func NewUniformJitter() *UniformJitter {
	return &UniformJitter{}
}

// Factor returns a multiplier drawn uniformly from [0.9, 1.1).
func (UniformJitter) Factor() float64 {
	return 0.9 + rand.Float64()*0.2
}
