package interp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ratinterp/matrix"
	"github.com/katalvlaran/ratinterp/rational"
)

const (
	opInterpolate = "Interpolate"
	opValidate    = "ValidateSamples"
)

func interpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Interpolate returns the coefficients [a0, a1, …, a(n-1)], lowest degree
// first, of the unique polynomial p with deg p < n and p(xs[i]) = ys[i].
//
// Trailing zero coefficients are dropped; an all-zero result is [0].
// Neither xs nor ys is modified.
//
// Errors:
//   - ErrEmptySamples, ErrLengthMismatch: precondition violations.
//   - ErrNotTriangular: the system was singular, i.e. xs had duplicates.
//
// Complexity: O(n³) rational operations.
func Interpolate(xs, ys matrix.Vector) (matrix.Vector, error) {
	n := len(xs)
	if n == 0 {
		return nil, interpErrorf(opInterpolate, ErrEmptySamples)
	}
	if len(ys) != n {
		return nil, interpErrorf(opInterpolate, fmt.Errorf("%d xs, %d ys: %w", n, len(ys), ErrLengthMismatch))
	}

	sys, err := matrix.Augment(Vandermonde(xs), ys) // n×(n+1)
	if err != nil {
		return nil, interpErrorf(opInterpolate, err)
	}
	solved, err := matrix.Solve(sys)
	if err != nil {
		return nil, interpErrorf(opInterpolate, err)
	}
	if !matrix.IsTriangular(solved) {
		return nil, interpErrorf(opInterpolate, ErrNotTriangular)
	}

	// Identity on the coefficient block: row i's constant is a_i.
	coeffs, err := solved.Column(n)
	if err != nil {
		return nil, interpErrorf(opInterpolate, err)
	}

	return Trim(coeffs), nil
}

// Vandermonde returns the n×n matrix V[i][j] = xs[i]^j, with 0^0 = 1.
func Vandermonde(xs matrix.Vector) matrix.Matrix {
	n := len(xs)
	out := make(matrix.Matrix, n)
	for i, x := range xs {
		row := make(matrix.Vector, n)
		for j := range row {
			row[j] = rational.Pow(x, uint(j))
		}
		out[i] = row
	}

	return out
}

// Trim returns a copy of v without trailing zeros. The result is never empty:
// an empty or all-zero v yields [0], the zero polynomial.
func Trim(v matrix.Vector) matrix.Vector {
	end := len(v)
	for end > 0 && (v[end-1] == nil || rational.IsZero(v[end-1])) {
		end--
	}
	if end == 0 {
		return matrix.Vector{rational.Zero()}
	}

	return v[:end].Clone()
}

// ValidateSamples performs the checks a caller owes Interpolate: at least one
// sample, equal lengths, and pairwise distinct xs.
func ValidateSamples(xs, ys matrix.Vector) error {
	if len(xs) == 0 {
		return interpErrorf(opValidate, ErrEmptySamples)
	}
	if !Unique(xs) {
		return interpErrorf(opValidate, ErrDuplicateX)
	}
	if len(ys) != len(xs) {
		return interpErrorf(opValidate, fmt.Errorf("%d xs, %d ys: %w", len(xs), len(ys), ErrLengthMismatch))
	}

	return nil
}

// Unique reports whether all values of v are pairwise distinct.
// Complexity: O(n log n) comparisons on a sorted copy.
func Unique(v matrix.Vector) bool {
	sorted := v.Clone()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Cmp(sorted[i]) == 0 {
			return false
		}
	}

	return true
}
