package smooth

import (
	"testing"

	"github.com/cwbudde/algo-curves/internal/testutil"
)

func BenchmarkSmooth(b *testing.B) {
	benches := []struct {
		name    string
		length  int
		padding int
	}{
		{"n=1k_pad=10", 1000, 10},
		{"n=10k_pad=10", 10000, 10},
		{"n=100k_pad=10", 100000, 10},
	}

	for _, bb := range benches {
		b.Run(bb.name, func(b *testing.B) {
			x := testutil.Steps(bb.length, 1000)
			y := testutil.NoisyRamp(1, 0, 0.01, 2, bb.length)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := Smooth(x, y, bb.padding); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
