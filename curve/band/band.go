// Package band composes the curve pipeline: per-run smoothing, ragged-length
// alignment, and distribution-aware reduction of one run group into a single
// median curve with an interquartile band.
package band

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-curves/curve/aggregate"
	"github.com/cwbudde/algo-curves/curve/align"
	"github.com/cwbudde/algo-curves/curve/smooth"
)

// Errors returned by Summarize.
var (
	ErrEmptyGroup     = errors.New("band: group has no runs")
	ErrLengthMismatch = errors.New("band: run x/y length mismatch")
)

// Run is one trial's recorded time series: x holds steps or timestamps in
// non-decreasing order, y the observed metric.
type Run struct {
	X []float64
	Y []float64
}

// Group is the set of repeated runs for one configuration.
type Group struct {
	Name string
	Runs []Run
}

// Option configures group summarization.
type Option func(*config)

type config struct {
	smoothing       int
	padding         int
	referenceLength int
	sentinel        []align.Option
	sentinelAgg     []aggregate.Option
}

// WithSmoothing enables per-run smoothing. Values of 1 or below leave the
// runs untouched; smoothing is also skipped when the derived kernel width
// is 1, since the convolution would be an identity.
func WithSmoothing(smoothing, padding int) Option {
	return func(c *config) {
		c.smoothing = smoothing
		c.padding = padding
	}
}

// WithReferenceLength fixes the window scale for all runs in the group,
// instead of deriving it from each run's own length.
func WithReferenceLength(n int) Option {
	return func(c *config) {
		c.referenceLength = n
	}
}

// WithSentinel sets the padding sentinel used during alignment and
// aggregation. The default is NaN.
func WithSentinel(v float64) Option {
	return func(c *config) {
		c.sentinel = []align.Option{align.WithSentinel(v)}
		c.sentinelAgg = []aggregate.Option{aggregate.WithSentinel(v)}
	}
}

// Summarize reduces a run group to one summary curve: runs are smoothed
// independently (when enabled), right-padded to the length of the longest
// run, and reduced per position to median/q25/q75 over the runs that hold a
// real value there. The curve's x-axis is that of the first run reaching
// the maximum length.
func Summarize(g Group, opts ...Option) (aggregate.SummaryCurve, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(g.Runs) == 0 {
		return aggregate.SummaryCurve{}, ErrEmptyGroup
	}

	xs := make([][]float64, len(g.Runs))
	ys := make([][]float64, len(g.Runs))

	for i, run := range g.Runs {
		if len(run.X) != len(run.Y) {
			return aggregate.SummaryCurve{}, fmt.Errorf("run %d: %w", i, ErrLengthMismatch)
		}

		if cfg.smoothed(len(run.X)) {
			var smoothOpts []smooth.Option
			if cfg.referenceLength > 0 {
				smoothOpts = append(smoothOpts, smooth.WithReferenceLength(cfg.referenceLength))
			}

			x, y, err := smooth.Smooth(run.X, run.Y, cfg.padding, smoothOpts...)
			if err != nil {
				return aggregate.SummaryCurve{}, fmt.Errorf("run %d: %w", i, err)
			}
			xs[i], ys[i] = x, y
			continue
		}

		xs[i], ys[i] = run.X, run.Y
	}

	paddedXs, longest, err := align.Pad(xs, cfg.sentinel...)
	if err != nil {
		return aggregate.SummaryCurve{}, err
	}

	paddedYs, _, err := align.Pad(ys, cfg.sentinel...)
	if err != nil {
		return aggregate.SummaryCurve{}, err
	}

	return aggregate.Summarize(paddedYs, paddedXs, longest, cfg.sentinelAgg...)
}

// smoothed reports whether smoothing applies to a run of length n.
func (c config) smoothed(n int) bool {
	if c.smoothing <= 1 {
		return false
	}
	if c.padding < 1 {
		// Invalid padding still reaches the Smoother so it can fail fast.
		return true
	}

	ref := c.referenceLength
	if ref <= 0 {
		ref = n
	}

	return smooth.Width(ref, c.padding) > 1
}
