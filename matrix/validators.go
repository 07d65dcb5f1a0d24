// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for structural checks shared by the kernels.
//  - Return plain sentinel errors (wrapped with the validator tag) so kernels
//    can wrap them once more with their own op tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRectangular ensures every row of m has the same length as row 0.
//
// Inputs: any Matrix, including nil/empty (accepted: "no equations").
// Returns: nil or wrapped ErrNonRectangular naming the first offending row.
// Complexity: O(r).
func ValidateRectangular(m Matrix) error {
	if len(m) == 0 {
		return nil // empty matrix is valid by contract
	}
	want := len(m[0]) // reference width taken from the first row
	for i := 1; i < len(m); i++ {
		if len(m[i]) != want {
			return validatorErrorf("ValidateRectangular",
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(m[i]), want, ErrNonRectangular))
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(v Vector, n int) error {
	if len(v) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("length %d, want %d: %w", len(v), n, ErrNonRectangular))
	}

	return nil
}
