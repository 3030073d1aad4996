// Package render draws summary curves with gonum/plot: one median line per
// group plus a translucent interquartile band, a shared legend, and
// abbreviated step-count tick labels.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-curves/curve/aggregate"
)

// ErrBadColor is returned for color strings that are not #rrggbb hex.
var ErrBadColor = errors.New("render: invalid color")

// bandAlpha is the fill opacity of the interquartile band.
const bandAlpha = 64 // ~25%

// Curve pairs a summary curve with its presentation.
type Curve struct {
	Label   string
	Color   color.Color
	Summary aggregate.SummaryCurve
}

// Chart accumulates curves on a single set of axes.
type Chart struct {
	p *plot.Plot
}

// NewChart creates an empty chart with the given title and axis labels.
// X-axis ticks are abbreviated with k/M suffixes.
func NewChart(title, xlabel, ylabel string) *Chart {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = SuffixTicks{}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	return &Chart{p: p}
}

// Add draws one curve: the q25..q75 band underneath, the median line on
// top, and a legend entry. Positions where the summary is NaN split the
// drawing into segments.
func (c *Chart) Add(curve Curve) error {
	col := curve.Color
	if col == nil {
		col = DefaultPalette[0]
	}

	fill := bandFill(col)

	for _, seg := range validSegments(curve.Summary) {
		poly, err := plotter.NewPolygon(bandOutline(curve.Summary, seg))
		if err != nil {
			return fmt.Errorf("render: band for %q: %w", curve.Label, err)
		}
		poly.Color = fill
		poly.LineStyle.Color = color.Transparent
		c.p.Add(poly)
	}

	var legendLine *plotter.Line
	for _, seg := range validSegments(curve.Summary) {
		line, err := plotter.NewLine(medianPoints(curve.Summary, seg))
		if err != nil {
			return fmt.Errorf("render: median for %q: %w", curve.Label, err)
		}
		line.Color = col
		line.Width = vg.Points(2.5)
		c.p.Add(line)
		legendLine = line
	}

	if legendLine != nil {
		c.p.Legend.Add(curve.Label, legendLine)
	}

	return nil
}

// Save renders the chart to a file; the format follows the extension
// (.png, .svg, .pdf, ...). The canvas is 10x6 inches.
func (c *Chart) Save(path string) error {
	if err := c.p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// segment is a half-open index range [from, to) of valid curve positions.
type segment struct {
	from, to int
}

// validSegments returns the maximal runs of positions where median and both
// quartiles are real values.
func validSegments(s aggregate.SummaryCurve) []segment {
	var segs []segment
	start := -1

	for i := 0; i < s.Len(); i++ {
		ok := !math.IsNaN(s.Median[i]) && !math.IsNaN(s.Q25[i]) && !math.IsNaN(s.Q75[i])
		if ok && start < 0 {
			start = i
		}
		if !ok && start >= 0 {
			segs = append(segs, segment{start, i})
			start = -1
		}
	}
	if start >= 0 {
		segs = append(segs, segment{start, s.Len()})
	}

	return segs
}

// medianPoints converts one segment of the median curve to plot points.
func medianPoints(s aggregate.SummaryCurve, seg segment) plotter.XYs {
	pts := make(plotter.XYs, 0, seg.to-seg.from)
	for i := seg.from; i < seg.to; i++ {
		pts = append(pts, plotter.XY{X: s.X[i], Y: s.Median[i]})
	}
	return pts
}

// bandOutline walks the q25 edge forward and the q75 edge backward to close
// the interquartile polygon for one segment.
func bandOutline(s aggregate.SummaryCurve, seg segment) plotter.XYs {
	n := seg.to - seg.from
	pts := make(plotter.XYs, 0, 2*n)
	for i := seg.from; i < seg.to; i++ {
		pts = append(pts, plotter.XY{X: s.X[i], Y: s.Q25[i]})
	}
	for i := seg.to - 1; i >= seg.from; i-- {
		pts = append(pts, plotter.XY{X: s.X[i], Y: s.Q75[i]})
	}
	return pts
}

// bandFill derives the translucent band color from the line color.
func bandFill(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: bandAlpha,
	}
}

// DefaultPalette cycles through the conventional comparison colors.
var DefaultPalette = []color.Color{
	color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
	color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // orange
	color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // green
	color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
}

// PaletteColor returns the i-th palette entry, wrapping around.
func PaletteColor(i int) color.Color {
	return DefaultPalette[i%len(DefaultPalette)]
}

// ParseHexColor parses a #rrggbb string into an opaque color.
func ParseHexColor(s string) (color.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
