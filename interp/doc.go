// Package interp finds the unique polynomial of degree < n through n sample
// points, exactly, over the rationals.
//
// 🚀 How?
//
//	Row i of the system is the Vandermonde row x_i^0 … x_i^(n-1) augmented
//	with y_i. matrix.Solve reduces it; with distinct x_i the coefficient block
//	becomes the identity and the last column holds a_0 … a_(n-1).
//
// ✨ Key features:
//   - exact: no rounding anywhere, 1/3 stays 1/3
//   - 0^0 = 1, so a sample at x = 0 pins the constant term
//   - trailing zero coefficients are trimmed; the zero polynomial is [0]
//
// ⚙️ Usage:
//
//	xs := matrix.NewVector(1, 2, 3, 4)
//	ys := matrix.NewVector(1, 3, 5, 10)
//	if err := interp.ValidateSamples(xs, ys); err != nil {
//	  // ErrEmptySamples, ErrLengthMismatch or ErrDuplicateX
//	}
//	coeffs, err := interp.Interpolate(xs, ys) // [-4 15/2 -3 1/2]
//
// Interpolate itself only checks emptiness and lengths. Distinct x values are
// the caller's job (ValidateSamples); repeated ones make the system singular
// and surface as ErrNotTriangular.
package interp
