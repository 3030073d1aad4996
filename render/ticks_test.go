package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatTick(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{500, "500"},
		{999, "999"},
		{1000, "1k"},
		{250000, "250k"},
		{999999, "1000k"},
		{1e6, "1.0M"},
		{1500000, "1.5M"},
		{2.5e7, "25.0M"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, FormatTick(tt.value), "value %v", tt.value)
	}
}

func TestSuffixTicksRelabelsMajorTicks(t *testing.T) {
	ticks := SuffixTicks{}.Ticks(0, 1e6)
	require.NotEmpty(t, ticks)

	seenMajor := false
	for _, tick := range ticks {
		if tick.Label == "" {
			continue
		}
		seenMajor = true
		require.Equal(t, FormatTick(tick.Value), tick.Label)
	}
	require.True(t, seenMajor)
}
