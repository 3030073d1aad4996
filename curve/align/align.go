// Package align assembles variable-length run sequences into a rectangular
// block by right-padding shorter runs with a sentinel value.
//
// The index of the first run reaching the maximum length is reported so that
// callers can use that run's x-coordinates as the reference axis for the
// whole block. When several runs share the same length but sampled different
// x values, this choice is arbitrary; the block does not merge or
// interpolate axes.
package align

import (
	"errors"
	"math"
)

// ErrEmptyInput is returned when there are no sequences to align.
var ErrEmptyInput = errors.New("align: empty input")

// Option configures padding.
type Option func(*config)

type config struct {
	sentinel float64
}

// WithSentinel sets the padding value used beyond a sequence's original
// length. The default is NaN.
func WithSentinel(v float64) Option {
	return func(c *config) {
		c.sentinel = v
	}
}

func applyOptions(opts []Option) config {
	cfg := config{sentinel: math.NaN()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Pad right-pads every sequence with the sentinel up to the maximum input
// length L and returns the resulting [N][L] block along with the index of
// the first sequence of length L. Every row is a fresh allocation; inputs
// are never retained or mutated.
func Pad(seqs [][]float64, opts ...Option) ([][]float64, int, error) {
	if len(seqs) == 0 {
		return nil, 0, ErrEmptyInput
	}

	cfg := applyOptions(opts)

	maxLen := 0
	longest := 0
	for i, s := range seqs {
		if len(s) > maxLen {
			maxLen = len(s)
			longest = i
		}
	}

	padded := make([][]float64, len(seqs))
	for i, s := range seqs {
		row := make([]float64, maxLen)
		copy(row, s)
		for j := len(s); j < maxLen; j++ {
			row[j] = cfg.sentinel
		}
		padded[i] = row
	}

	return padded, longest, nil
}

// PadTensor pads vector-valued sequences along the leading (time) axis,
// preserving the trailing dimension. Steps beyond a sequence's original
// length hold sentinel-filled vectors sized like that sequence's steps.
func PadTensor(seqs [][][]float64, opts ...Option) ([][][]float64, int, error) {
	if len(seqs) == 0 {
		return nil, 0, ErrEmptyInput
	}

	cfg := applyOptions(opts)

	maxLen := 0
	longest := 0
	for i, s := range seqs {
		if len(s) > maxLen {
			maxLen = len(s)
			longest = i
		}
	}

	padded := make([][][]float64, len(seqs))
	for i, s := range seqs {
		width := 0
		if len(s) > 0 {
			width = len(s[0])
		}

		rows := make([][]float64, maxLen)
		for t, step := range s {
			row := make([]float64, len(step))
			copy(row, step)
			rows[t] = row
		}
		for t := len(s); t < maxLen; t++ {
			row := make([]float64, width)
			for j := range row {
				row[j] = cfg.sentinel
			}
			rows[t] = row
		}
		padded[i] = rows
	}

	return padded, longest, nil
}
