package render

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-curves/curve/aggregate"
)

func testSummary() aggregate.SummaryCurve {
	return aggregate.SummaryCurve{
		X:      []float64{0, 1000, 2000, 3000},
		Median: []float64{1, 2, 3, 4},
		Q25:    []float64{0.5, 1.5, 2.5, 3.5},
		Q75:    []float64{1.5, 2.5, 3.5, 4.5},
	}
}

func TestValidSegments(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name     string
		median   []float64
		expected []segment
	}{
		{"all valid", []float64{1, 2, 3}, []segment{{0, 3}}},
		{"all nan", []float64{nan, nan}, nil},
		{"nan head", []float64{nan, 2, 3}, []segment{{1, 3}}},
		{"nan tail", []float64{1, 2, nan}, []segment{{0, 2}}},
		{"split", []float64{1, nan, 3, 4}, []segment{{0, 1}, {2, 4}}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := aggregate.SummaryCurve{
				X:      make([]float64, len(tt.median)),
				Median: tt.median,
				Q25:    tt.median,
				Q75:    tt.median,
			}
			require.Equal(t, tt.expected, validSegments(s))
		})
	}
}

func TestBandOutlineClosesPolygon(t *testing.T) {
	s := testSummary()

	pts := bandOutline(s, segment{0, 4})
	require.Len(t, pts, 8)

	// Forward along q25, backward along q75.
	require.Equal(t, 0.5, pts[0].Y)
	require.Equal(t, 3.5, pts[3].Y)
	require.Equal(t, 4.5, pts[4].Y)
	require.Equal(t, 1.5, pts[7].Y)
	require.Equal(t, pts[0].X, pts[7].X)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#1f77b4")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, c)

	for _, bad := range []string{"", "#fff", "1f77b4", "#zzzzzz", "#1f77b4a0"} {
		_, err := ParseHexColor(bad)
		require.ErrorIs(t, err, ErrBadColor, "input %q", bad)
	}
}

func TestPaletteColorWraps(t *testing.T) {
	require.Equal(t, DefaultPalette[0], PaletteColor(0))
	require.Equal(t, DefaultPalette[0], PaletteColor(len(DefaultPalette)))
	require.Equal(t, DefaultPalette[1], PaletteColor(len(DefaultPalette)+1))
}

func TestBandFill(t *testing.T) {
	fill := bandFill(color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff})
	require.Equal(t, color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: bandAlpha}, fill)
}

func TestChartSave(t *testing.T) {
	chart := NewChart("Learning Curve", "Environment Steps", "Episode Reward")

	require.NoError(t, chart.Add(Curve{
		Label:   "SAC",
		Color:   PaletteColor(0),
		Summary: testSummary(),
	}))

	// A curve with a NaN gap still renders as two segments.
	gappy := testSummary()
	gappy.Median[1] = math.NaN()
	require.NoError(t, chart.Add(Curve{
		Label:   "PEBBLE",
		Color:   PaletteColor(1),
		Summary: gappy,
	}))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, chart.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}
