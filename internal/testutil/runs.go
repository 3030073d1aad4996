package testutil

import "math/rand"

// Steps generates the x-axis of a synthetic run: 0, stride, 2*stride, ...
func Steps(length int, stride float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i) * stride
	}
	return out
}

// Ramp generates a linear metric signal start, start+slope, start+2*slope, ...
func Ramp(start, slope float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + slope*float64(i)
	}
	return out
}

// Constant generates a constant-valued signal.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NoisyRamp generates a ramp with deterministic uniform noise, for tests
// that need run-to-run variation with a fixed seed.
func NoisyRamp(seed int64, start, slope, amplitude float64, length int) []float64 {
	out := Ramp(start, slope, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] += (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
