// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag; callers match
// them via errors.Is. Degenerate systems (singular, non-square) are NOT errors.

package matrix

import "errors"

var (
	// ErrNonRectangular is returned when rows of a non-empty matrix differ in length.
	ErrNonRectangular = errors.New("matrix: rows have different lengths")

	// ErrNotEchelon signals that BackSubstitute met a pivot that is not exactly one,
	// i.e. its input was not produced by Eliminate (caller contract violation).
	ErrNotEchelon = errors.New("matrix: matrix is not in normalized row-echelon form")

	// ErrOutOfRange indicates that a column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
