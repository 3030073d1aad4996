package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-curves/curve/conv"
)

func ExampleBoxSame() {
	signal := []float64{1, 2, 3, 4, 5}

	sums, err := conv.BoxSame(signal, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(sums)
	// Output: [3 6 9 12 9]
}
