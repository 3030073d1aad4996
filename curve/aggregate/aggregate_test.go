package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

func TestSummarize_FullColumns(t *testing.T) {
	ys := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
		{4, 40},
	}
	xs := [][]float64{
		{0, 1},
		{0, 1},
		{0, 1},
		{0, 1},
	}

	curve, err := Summarize(ys, xs, 0)
	require.NoError(t, err)

	// Even count: median averages the middle pair, quartiles interpolate
	// at rank p*(m-1).
	require.Equal(t, []float64{2.5, 25}, curve.Median)
	require.Equal(t, []float64{1.75, 17.5}, curve.Q25)
	require.Equal(t, []float64{3.25, 32.5}, curve.Q75)
	require.Equal(t, []float64{0, 1}, curve.X)
}

func TestSummarize_MaskedColumn(t *testing.T) {
	ys := [][]float64{
		{1, 5, nan()},
		{2, nan(), nan()},
		{3, 7, nan()},
	}
	xs := [][]float64{
		{0, 1, 2},
		{0, 1, 2},
		{0, 1, 2},
	}

	curve, err := Summarize(ys, xs, 0)
	require.NoError(t, err)

	// Column 0: all three runs. Column 1: only runs 0 and 2.
	require.Equal(t, 2.0, curve.Median[0])
	require.Equal(t, 6.0, curve.Median[1])
	require.Equal(t, 5.5, curve.Q25[1])
	require.Equal(t, 6.5, curve.Q75[1])

	// Column 2: no real values at all -> sentinel statistics.
	require.True(t, math.IsNaN(curve.Median[2]))
	require.True(t, math.IsNaN(curve.Q25[2]))
	require.True(t, math.IsNaN(curve.Q75[2]))
}

func TestSummarize_SingleRun(t *testing.T) {
	ys := [][]float64{{3, 1, 4, 1, 5}}
	xs := [][]float64{{0, 1, 2, 3, 4}}

	curve, err := Summarize(ys, xs, 0)
	require.NoError(t, err)

	require.Equal(t, ys[0], curve.Median)
	require.Equal(t, ys[0], curve.Q25)
	require.Equal(t, ys[0], curve.Q75)
}

func TestSummarize_XTakenVerbatim(t *testing.T) {
	ys := [][]float64{
		{1, 2},
		{3, 4},
	}
	xs := [][]float64{
		{100, 200},
		{101, 201},
	}

	curve, err := Summarize(ys, xs, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{101, 201}, curve.X)

	// The curve owns its x-axis; the padded block stays untouched.
	curve.X[0] = -1
	require.Equal(t, 101.0, xs[1][0])
}

func TestSummarize_CustomSentinel(t *testing.T) {
	const missing = -1e9

	ys := [][]float64{
		{1, missing},
		{3, missing},
	}
	xs := [][]float64{
		{0, 1},
		{0, 1},
	}

	curve, err := Summarize(ys, xs, 0, WithSentinel(missing))
	require.NoError(t, err)

	require.Equal(t, 2.0, curve.Median[0])
	require.Equal(t, missing, curve.Median[1])
	require.Equal(t, missing, curve.Q25[1])
	require.Equal(t, missing, curve.Q75[1])
}

func TestSummarize_Errors(t *testing.T) {
	_, err := Summarize(nil, nil, 0)
	require.ErrorIs(t, err, ErrEmptyInput)

	ys := [][]float64{{1, 2}, {3, 4}}
	xs := [][]float64{{0, 1}, {0, 1}}

	_, err = Summarize(ys, xs[:1], 0)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Summarize([][]float64{{1, 2}, {3}}, xs, 0)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Summarize(ys, [][]float64{{0, 1}, {0}}, 0)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Summarize(ys, xs, 2)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Summarize(ys, xs, -1)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		name     string
		sorted   []float64
		p        float64
		expected float64
	}{
		{"single value", []float64{7}, 0.25, 7},
		{"median odd", []float64{1, 2, 3}, 0.5, 2},
		{"median even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"q25 interpolated", []float64{0, 10}, 0.25, 2.5},
		{"q75 interpolated", []float64{0, 10}, 0.75, 7.5},
		{"upper end", []float64{1, 2, 3}, 1.0, 3},
		{"lower end", []float64{1, 2, 3}, 0.0, 1},
		{"five values q25", []float64{10, 20, 30, 40, 50}, 0.25, 20},
		{"five values q75", []float64{10, 20, 30, 40, 50}, 0.75, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, quantile(tt.sorted, tt.p), 1e-12)
		})
	}
}
