package render

import (
	"fmt"

	"gonum.org/v1/plot"
)

// SuffixTicks is a plot.Ticker that relabels the default ticks with metric
// suffixes, so step counts read "250k" or "1.5M" instead of raw integers.
type SuffixTicks struct{}

// Ticks implements plot.Ticker.
func (SuffixTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue // minor tick
		}
		ticks[i].Label = FormatTick(t.Value)
	}
	return ticks
}

// FormatTick abbreviates a tick value: millions get one decimal and an "M"
// suffix, thousands a bare "k" suffix, smaller values print as integers.
func FormatTick(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.0fk", v/1e3)
	default:
		return fmt.Sprintf("%d", int64(v))
	}
}
