// SPDX-License-Identifier: MIT
// Package matrix provides the exact Gaussian elimination kernels on Matrix:
// forward elimination, back substitution and the triangularity predicate.
//
// Purpose:
//   - Declare the canonical kernels used by Solve and by the interpolator.
//   - Define operation tags for uniform error wrapping.
//
// Notes:
//   - Every kernel clones its input; the caller's matrix is never mutated.
//   - Loop orders are fixed, so row swaps (and thus intermediate states) are
//     deterministic for a given input.

package matrix

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/ratinterp/rational"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opEliminate      = "Eliminate"
	opBackSubstitute = "BackSubstitute"
	opSolve          = "Solve"
	opColumn         = "Column"
	opAugment        = "Augment"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Eliminate reduces a copy of m to row-echelon form by forward Gaussian
// elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: validate rectangularity and clone.
//   - Stage 2: walk (currentRow, pivotalColumn) from (0,0); in each column pick
//     the first row at or below currentRow with a non-zero entry. Position,
//     not magnitude, decides: with exact arithmetic there is nothing to gain
//     from a larger pivot.
//   - Stage 3: swap it up, divide the row by the pivot from pivotalColumn on,
//     subtract multiples of it from every row below.
//   - A column without a candidate is a free column: advance the column only.
//
// Behavior highlights:
//   - Every pivot row gets a leading 1, strictly right of the one above it.
//   - Entries above pivots are left as they are (see BackSubstitute).
//   - Singular or non-square input is fine: it just yields fewer pivots.
//
// Errors:
//   - ErrNonRectangular for ragged input.
//
// Complexity:
//   - O(min(r,c) · r · c) rational operations; operand size may grow.
func Eliminate(m Matrix) (Matrix, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opEliminate, err)
	}
	out := m.Clone()
	eliminate(out)

	return out, nil
}

// eliminate runs forward elimination in place. mat must be rectangular.
func eliminate(mat Matrix) {
	rows := len(mat)
	if rows == 0 {
		return
	}
	cols := len(mat[0])

	var (
		currentRow, pivotalColumn int      // echelon cursor
		pivotRow, i, j            int      // loop iterators
		pivot, factor             *big.Rat // copies, never aliases of cells
	)
	tmp := new(big.Rat) // scratch for factor*cell
	for currentRow < rows && pivotalColumn < cols {
		// 1. First non-zero entry at or below currentRow in this column.
		pivotRow = -1
		for i = currentRow; i < rows; i++ {
			if !isZeroCell(mat[i][pivotalColumn]) {
				pivotRow = i
				break
			}
		}
		// 2. Free column: move right, stay on the same row.
		if pivotRow < 0 {
			pivotalColumn++
			continue
		}
		// 3. Bring the pivot row up.
		mat[currentRow], mat[pivotRow] = mat[pivotRow], mat[currentRow]

		// 4. Normalize so the pivot is exactly one.
		pivot = rational.Clone(mat[currentRow][pivotalColumn])
		for j = pivotalColumn; j < cols; j++ {
			mat[currentRow][j].Quo(mat[currentRow][j], pivot)
		}

		// 5. Zero the pivotal column below.
		for i = currentRow + 1; i < rows; i++ {
			if isZeroCell(mat[i][pivotalColumn]) {
				continue // nothing to cancel
			}
			factor = rational.Clone(mat[i][pivotalColumn])
			for j = pivotalColumn; j < cols; j++ {
				tmp.Mul(factor, mat[currentRow][j])
				mat[i][j].Sub(mat[i][j], tmp)
			}
		}

		// 6. Next pivot goes one row down and one column right.
		currentRow++
		pivotalColumn++
	}
}

// BackSubstitute takes a copy of a row-echelon matrix (as produced by
// Eliminate) to reduced row-echelon form by clearing every pivot column above
// its pivot.
//
// Implementation:
//   - Stage 1: validate rectangularity, clone, reverse the row order.
//   - Stage 2: walk the reversed rows keeping a bound that only decreases
//     (initially Cols). A row's pivot is its first non-zero column strictly
//     left of the bound; rows without one are skipped untouched.
//   - Stage 3: the pivot must be exactly one; subtract multiples of the row
//     from every later reversed row (the rows above it originally).
//   - Stage 4: reverse back.
//
// Errors:
//   - ErrNonRectangular for ragged input.
//   - ErrNotEchelon when a pivot is not one: the input did not come from
//     Eliminate. This is a caller bug, reported instead of producing garbage.
//
// Complexity:
//   - O(r² · c) rational operations.
func BackSubstitute(m Matrix) (Matrix, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opBackSubstitute, err)
	}
	out := m.Clone()
	if err := backSubstitute(out); err != nil {
		return nil, matrixErrorf(opBackSubstitute, err)
	}

	return out, nil
}

// backSubstitute runs the reduction in place. mat must be rectangular.
func backSubstitute(mat Matrix) error {
	rows := len(mat)
	if rows == 0 {
		return nil
	}
	cols := len(mat[0])

	reverseRows(mat)
	defer reverseRows(mat) // restore original order on every exit path

	var (
		currentRow, pivotRow, i, j int
		found                      bool
		factor                     *big.Rat
	)
	pivotalColumn := cols // upper bound for the next pivot, only decreases
	tmp := new(big.Rat)
	for currentRow = 0; currentRow < rows; currentRow++ {
		found = false
		for j = 0; j < pivotalColumn; j++ {
			if !isZeroCell(mat[currentRow][j]) {
				pivotalColumn = j
				found = true
				break
			}
		}
		if !found {
			continue // zero row, or nothing left of the bound
		}
		if !rational.IsOne(mat[currentRow][pivotalColumn]) {
			pivotRow = rows - 1 - currentRow // report in original numbering
			return fmt.Errorf("row %d, column %d: pivot %s: %w",
				pivotRow, pivotalColumn, cellString(mat[currentRow][pivotalColumn]), ErrNotEchelon)
		}
		for i = currentRow + 1; i < rows; i++ {
			if isZeroCell(mat[i][pivotalColumn]) {
				continue
			}
			factor = rational.Clone(mat[i][pivotalColumn])
			for j = pivotalColumn; j < cols; j++ {
				tmp.Mul(factor, mat[currentRow][j])
				mat[i][j].Sub(mat[i][j], tmp)
			}
		}
	}

	return nil
}

// reverseRows reverses the row order of mat in place.
func reverseRows(mat Matrix) {
	for i, j := 0, len(mat)-1; i < j; i, j = i+1, j-1 {
		mat[i], mat[j] = mat[j], mat[i]
	}
}

// IsTriangular reports whether m is a fully determined, eliminated system:
// m is non-empty, has strictly more columns than rows, and every row i has
// zeros in columns 0..i-1 and a non-zero entry at column i.
//
// Pure predicate: never fails, never panics (short rows simply yield false).
// Complexity: O(r²).
func IsTriangular(m Matrix) bool {
	if len(m) == 0 {
		return false
	}
	if m.Cols() <= len(m) {
		return false // no room for the augmented column(s)
	}
	for i, row := range m {
		if len(row) <= i {
			return false
		}
		for k := 0; k < i; k++ {
			if !isZeroCell(row[k]) {
				return false
			}
		}
		if isZeroCell(row[i]) {
			return false
		}
	}

	return true
}
