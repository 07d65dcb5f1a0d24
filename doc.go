// Package ratinterp finds the polynomial through a set of points, exactly.
//
// Given n samples (x_i, y_i) with distinct x_i, it returns the coefficients
// of the unique polynomial of degree below n passing through all of them.
// Every number is an arbitrary-precision fraction, so 1/3 stays 1/3 and
// there is no rounding anywhere between input and answer.
//
// Under the hood, everything is organized in small packages:
//
//	rational/       *big.Rat helpers: parsing, Pow with 0^0 = 1, predicates
//	matrix/         Vector/Matrix model, Gaussian elimination, back substitution
//	interp/         Vandermonde systems, Interpolate, sample validation
//	poly/           evaluation and "f(x)=…" rendering of coefficient vectors
//	console/        the interactive interpreter with its named-polynomial store
//	cmd/ratinterp/  the CLI: console by default, one-shot subcommands
//	examples/       small runnable scenarios
//
// Quick start:
//
//	xs := matrix.NewVector(1, 2, 3, 4)
//	ys := matrix.NewVector(1, 3, 5, 10)
//	coeffs, _ := interp.Interpolate(xs, ys)
//	fmt.Println(poly.Format(coeffs)) // f(x)=1/2*x^3-3*x^2+15/2*x-4
package ratinterp
