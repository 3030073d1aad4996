package smooth_test

import (
	"fmt"

	"github.com/cwbudde/algo-curves/curve/smooth"
)

func ExampleSmooth() {
	x := []float64{0, 1000, 2000, 3000, 4000}
	y := []float64{1, 2, 3, 4, 5}

	// Run of 5 samples, padding 2: halfwidth 1, kernel width 3.
	_, ys, err := smooth.Smooth(x, y, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(ys)
	// Output: [1.5 2 3 4 4.5]
}
