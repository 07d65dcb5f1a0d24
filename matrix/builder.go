// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ratinterp/rational"
)

// NewVector builds a Vector from integer values.
func NewVector(vals ...int64) Vector {
	out := make(Vector, len(vals))
	for i, v := range vals {
		out[i] = rational.FromInt(v)
	}

	return out
}

// ParseVector builds a Vector from rational literals ("3", "-1/2", "0.25").
// Errors wrap rational.ErrSyntax with the offending position.
func ParseVector(lits ...string) (Vector, error) {
	out := make(Vector, len(lits))
	for i, s := range lits {
		x, err := rational.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = x
	}

	return out, nil
}

// FromInts builds a Matrix from integer rows. Rows are copied as given, so a
// ragged input yields a ragged Matrix (rejected later by the kernels).
func FromInts(rows [][]int64) Matrix {
	out := make(Matrix, len(rows))
	for i, r := range rows {
		out[i] = NewVector(r...)
	}

	return out
}

// Zeros returns an r×c matrix of fresh zeros. Either dimension may be 0.
func Zeros(r, c int) Matrix {
	out := make(Matrix, r)
	for i := range out {
		row := make(Vector, c)
		for j := range row {
			row[j] = rational.Zero()
		}
		out[i] = row
	}

	return out
}

// Augment returns a copy of m with v appended as the last column.
// Requires len(v) == m.Rows().
func Augment(m Matrix, v Vector) (Matrix, error) {
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	out := m.Clone()
	for i := range out {
		out[i] = append(out[i], rational.Clone(v[i])) // fresh cell, v stays independent
	}

	return out, nil
}
