// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin entry points composing the canonical kernels; no loop duplication.
//   - Facades never change the loop orders of the kernels they call.

package matrix

// Solve reduces a copy of m to reduced row-echelon form:
// BackSubstitute(Eliminate(m)).
//
// Any rectangular matrix is accepted, including the empty one. For an
// augmented system [A|b] with invertible square A the coefficient block
// becomes the identity and the last column holds the unique solution.
// Singular or non-square systems come back with fewer pivots, not an error.
//
// Errors: ErrNonRectangular.
// Complexity: O(r · c · min(r,c)) rational operations.
func Solve(m Matrix) (Matrix, error) {
	ech, err := Eliminate(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	// ech is a private copy already; reduce it in place instead of cloning again.
	if err = backSubstitute(ech); err != nil {
		return nil, matrixErrorf(opSolve, matrixErrorf(opBackSubstitute, err))
	}

	return ech, nil
}

// Rank returns the number of non-zero rows of the row-echelon form of m.
// Complexity: same as Eliminate.
func Rank(m Matrix) (int, error) {
	ech, err := Eliminate(m)
	if err != nil {
		return 0, err
	}
	rank := 0
	for _, row := range ech {
		for _, x := range row {
			if !isZeroCell(x) {
				rank++
				break
			}
		}
	}

	return rank, nil
}
