package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgeo/matrix"
)

// ExampleBilinear evaluates a quadratic form under an indefinite
// Minkowski-style tensor diag(1, -1): timelike directions come out
// negative, spacelike positive.
func ExampleBilinear() {
	g, err := matrix.FromRows([][]float64{
		{1, 0},
		{0, -1},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	spacelike, _ := matrix.Bilinear([]float64{1, 0}, g, []float64{1, 0})
	timelike, _ := matrix.Bilinear([]float64{0, 1}, g, []float64{0, 1})

	fmt.Printf("spacelike=%g timelike=%g\n", spacelike, timelike)
	// Output:
	// spacelike=1 timelike=-1
}

// ExampleMatVec applies a diagonal scaling matrix to a vector.
func ExampleMatVec() {
	d, err := matrix.FromRows([][]float64{
		{2, 0},
		{0, 3},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	y, err := matrix.MatVec(d, []float64{1, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(y)
	// Output:
	// [2 3]
}
