// Package conv provides the convolution engine behind curve smoothing.
//
// Two strategies are offered:
//
//   - Direct convolution: O(N*M) time-domain convolution, best for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for wide kernels
//
// The Same and BoxSame entry points select a strategy automatically and trim
// the full convolution to "same" output length, i.e. the output has the length
// of the input signal and the kernel is centered on each position.
package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput   = errors.New("conv: empty input")
	ErrEmptyKernel  = errors.New("conv: empty kernel")
	ErrInvalidWidth = errors.New("conv: invalid kernel width")
)

// directThreshold is the kernel length above which FFT-based convolution
// beats the direct algorithm.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels.
// For longer kernels, use the overlap-add path via Same or BoxSame.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	n := len(a)
	m := len(b)
	result := make([]float64, n+m-1)

	// Use the vectorized path for kernels >= 4 taps
	const simdThreshold = 4
	if m >= simdThreshold {
		directToSIMD(result, a, b, n, m)
	} else {
		directToScalar(result, a, b, n, m)
	}

	return result, nil
}

// directToScalar performs scalar convolution for small kernels.
func directToScalar(dst, a, b []float64, n, m int) {
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// directToSIMD vectorizes the inner loop: for each input sample the kernel is
// scaled once and accumulated into the destination window.
func directToSIMD(dst, a, b []float64, n, m int) {
	temp := make([]float64, m)

	for i := 0; i < n; i++ {
		// temp = b * a[i]
		vecmath.ScaleBlock(temp, b, a[i])

		// dst[i:i+m] += temp
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Same convolves a with kernel b and trims the result to len(a), centering
// the kernel on each output position. The algorithm is selected by kernel
// length: direct below directThreshold taps, FFT overlap-add above.
func Same(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	var (
		full []float64
		err  error
	)
	if len(b) <= directThreshold {
		full, err = Direct(a, b)
	} else {
		full, err = OverlapAddConvolve(a, b)
	}
	if err != nil {
		return nil, err
	}

	return trimSame(full, len(a), len(b)), nil
}

// BoxSame convolves signal with an all-ones kernel of the given width and
// trims to "same" length. This is the moving-sum primitive used by smoothing:
// applied to the signal it yields windowed sums, applied to an all-ones signal
// it yields the per-position count of in-bounds taps.
func BoxSame(signal []float64, width int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if width < 1 {
		return nil, ErrInvalidWidth
	}

	kernel := make([]float64, width)
	for i := range kernel {
		kernel[i] = 1
	}

	return Same(signal, kernel)
}

// trimSame extracts the centered portion of a full convolution result so the
// output matches the signal length. The kernel anchor is (lenB-1)/2, the
// conventional centering for even and odd widths alike.
func trimSame(full []float64, lenA, lenB int) []float64 {
	start := (lenB - 1) / 2
	return full[start : start+lenA]
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
