// Package smooth applies a moving-average convolution to a single run's
// metric signal.
//
// The window scales with the run length: the half-width is ceil(ref/100)
// samples, where ref is the reference length (by default the run's own
// length), and the full kernel width is padding*halfwidth + 1. Passing an
// explicit reference length lets runs of slightly different lengths within
// one group share the same window scale.
//
// Edge positions, where the window extends past the sequence boundary, are
// normalized by the number of in-bounds taps rather than by the full kernel
// width. A fixed-width divisor would bias curve edges toward zero; the
// overlap count is obtained by convolving an all-ones signal with the same
// kernel, mirroring the convolution of the values.
package smooth

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-curves/curve/conv"
)

// Errors returned by Smooth.
var (
	ErrInvalidWindow  = errors.New("smooth: invalid window parameters")
	ErrLengthMismatch = errors.New("smooth: x and y length mismatch")
)

// Option configures smoothing.
type Option func(*config)

type config struct {
	referenceLength int // 0 means "use the run's own length"
}

// WithReferenceLength sets the length used to derive the window half-width,
// instead of the run's own length.
func WithReferenceLength(n int) Option {
	return func(c *config) {
		c.referenceLength = n
	}
}

// Width returns the effective kernel width for a run of reference length n
// smoothed with the given padding: padding*ceil(n/100) + 1.
//
// Callers use this to gate smoothing: a width of 1 makes the convolution an
// identity, so there is nothing to compute. Smooth itself always convolves.
func Width(n, padding int) int {
	halfwidth := int(math.Ceil(float64(n) / 100))
	return padding*halfwidth + 1
}

// Smooth returns a copy of x and a smoothed copy of y. The inputs are never
// mutated and the outputs share no memory with them.
//
// Fails with ErrInvalidWindow when padding < 1 or the reference length is
// not positive, and with ErrLengthMismatch when x and y differ in length.
func Smooth(x, y []float64, padding int, opts ...Option) ([]float64, []float64, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(x) != len(y) {
		return nil, nil, ErrLengthMismatch
	}

	ref := cfg.referenceLength
	if ref == 0 {
		ref = len(x)
	}

	if padding < 1 || ref <= 0 {
		return nil, nil, ErrInvalidWindow
	}

	width := Width(ref, padding)

	sums, err := conv.BoxSame(y, width)
	if err != nil {
		return nil, nil, err
	}

	ones := make([]float64, len(y))
	for i := range ones {
		ones[i] = 1
	}

	counts, err := conv.BoxSame(ones, width)
	if err != nil {
		return nil, nil, err
	}

	ys := make([]float64, len(y))
	for i := range ys {
		// The tap counts are integral by construction; rounding keeps the
		// FFT convolution path from leaking noise into the divisor.
		ys[i] = sums[i] / math.Round(counts[i])
	}

	xs := make([]float64, len(x))
	copy(xs, x)

	return xs, ys, nil
}
