// Package aggregate reduces a padded multi-run block to a summary curve:
// per-position median with an interquartile band.
//
// Sentinel-padded positions are excluded from every statistic via an
// explicit validity check, not by relying on NaN propagation, so the
// all-sentinel column is a deterministic, testable branch regardless of the
// sentinel chosen.
package aggregate

import (
	"errors"
	"math"
	"sort"
)

// Errors returned by Summarize.
var (
	ErrEmptyInput    = errors.New("aggregate: empty input")
	ErrShapeMismatch = errors.New("aggregate: shape mismatch")
)

// SummaryCurve is the reduction of one run group: a reference x-axis and
// three equal-length y-sequences.
type SummaryCurve struct {
	X      []float64
	Median []float64
	Q25    []float64
	Q75    []float64
}

// Len returns the number of positions in the curve.
func (c SummaryCurve) Len() int {
	return len(c.X)
}

// Option configures aggregation.
type Option func(*config)

type config struct {
	sentinel float64
}

// WithSentinel sets the value marking padded positions. The default is NaN.
func WithSentinel(v float64) Option {
	return func(c *config) {
		c.sentinel = v
	}
}

// Summarize reduces the [N][L] block paddedYs across the run dimension,
// producing median, 25th-percentile, and 75th-percentile sequences of
// length L. A column's statistics are computed only over runs holding a
// real value there; a column with no real values yields the sentinel for
// all three statistics. The output x-sequence is row longest of paddedXs,
// copied verbatim.
//
// Fails with ErrShapeMismatch when the two blocks do not share shape [N][L]
// or longest is out of range, and with ErrEmptyInput when N is zero.
func Summarize(paddedYs, paddedXs [][]float64, longest int, opts ...Option) (SummaryCurve, error) {
	cfg := config{sentinel: math.NaN()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(paddedYs)
	if n == 0 {
		return SummaryCurve{}, ErrEmptyInput
	}
	if len(paddedXs) != n || longest < 0 || longest >= n {
		return SummaryCurve{}, ErrShapeMismatch
	}

	l := len(paddedYs[0])
	for i := 0; i < n; i++ {
		if len(paddedYs[i]) != l || len(paddedXs[i]) != l {
			return SummaryCurve{}, ErrShapeMismatch
		}
	}

	curve := SummaryCurve{
		X:      make([]float64, l),
		Median: make([]float64, l),
		Q25:    make([]float64, l),
		Q75:    make([]float64, l),
	}
	copy(curve.X, paddedXs[longest])

	column := make([]float64, 0, n)
	for j := 0; j < l; j++ {
		column = column[:0]
		for i := 0; i < n; i++ {
			v := paddedYs[i][j]
			if !isSentinel(v, cfg.sentinel) {
				column = append(column, v)
			}
		}

		if len(column) == 0 {
			curve.Median[j] = cfg.sentinel
			curve.Q25[j] = cfg.sentinel
			curve.Q75[j] = cfg.sentinel
			continue
		}

		sort.Float64s(column)
		curve.Q25[j] = quantile(column, 0.25)
		curve.Median[j] = quantile(column, 0.50)
		curve.Q75[j] = quantile(column, 0.75)
	}

	return curve, nil
}

// isSentinel reports whether v marks a padded position. A NaN sentinel
// cannot be compared with ==.
func isSentinel(v, sentinel float64) bool {
	if math.IsNaN(sentinel) {
		return math.IsNaN(v)
	}
	return v == sentinel
}

// quantile returns the p-quantile of sorted values by linear interpolation
// between order statistics: rank p*(m-1), fractional ranks interpolated.
// For p=0.5 this reduces to the conventional median, averaging the two
// middle values when the count is even.
func quantile(sorted []float64, p float64) float64 {
	m := len(sorted)
	if m == 1 {
		return sorted[0]
	}

	rank := p * float64(m-1)
	lo := int(math.Floor(rank))
	if lo >= m-1 {
		return sorted[m-1]
	}
	frac := rank - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
