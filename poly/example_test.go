package poly_test

import (
	"fmt"

	"github.com/katalvlaran/ratinterp/matrix"
	"github.com/katalvlaran/ratinterp/poly"
	"github.com/katalvlaran/ratinterp/rational"
)

func ExampleFormat() {
	coeffs, _ := matrix.ParseVector("-4", "15/2", "-3", "1/2")
	fmt.Println(poly.Format(coeffs))
	fmt.Println(poly.FormatVector(coeffs))
	fmt.Println(rational.String(poly.Eval(coeffs, rational.FromInt(4))))

	// Output:
	// f(x)=1/2*x^3-3*x^2+15/2*x-4
	// (-4 15/2 -3 1/2)
	// 10
}
