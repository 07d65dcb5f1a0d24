// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the Vector and Matrix types and their structural
// methods (shape, copies, comparison, formatting). Kernels live in impl_*.go,
// sentinels in errors.go and shape checks in validators.go.
package matrix

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/ratinterp/rational"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Vector is an ordered sequence of exact rationals.
// Order is meaningful (coefficient index, sample index); duplicates are allowed.
type Vector []*big.Rat

// Matrix is an ordered sequence of row vectors.
//
// Invariant: all rows of a non-empty Matrix have the same length (checked by
// ValidateRectangular). The empty Matrix is valid and means "no equations".
//
// Complexity notes: Rows/Cols are O(1); Clone/Equal are O(r*c) big-number ops.
type Matrix []Vector

// Clone returns a deep copy of v. Nil entries are copied as 0.
// Complexity: O(len(v)).
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v)) // single allocation for the slice header
	for i, x := range v {
		out[i] = rational.Clone(x) // fresh *big.Rat per cell, no aliasing
	}

	return out
}

// Equal reports whether v and w have the same length and equal entries.
// A nil entry compares equal to 0.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if cmpCell(v[i], w[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders v as "[a, b, c]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for j, x := range v {
		if j > 0 {
			sb.WriteString(_fmtSep) // separate values with comma
		}
		sb.WriteString(cellString(x))
	}
	sb.WriteString("]")

	return sb.String()
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m Matrix) Rows() int { return len(m) }

// Cols returns the length of the first row, or 0 for an empty matrix.
// Complexity: O(1).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0 // "no equations" has no columns
	}

	return len(m[0])
}

// Clone returns a deep copy of m; the result shares no *big.Rat with m.
// Complexity: O(r*c).
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Clone()
	}

	return out
}

// Equal reports whether m and o have identical shapes and entries.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if !m[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// Column returns a fresh copy of column j.
// Returns ErrOutOfRange if some row has no column j.
// Complexity: O(r).
func (m Matrix) Column(j int) (Vector, error) {
	out := make(Vector, len(m))
	for i, row := range m {
		if j < 0 || j >= len(row) {
			return nil, matrixErrorf(opColumn, ErrOutOfRange)
		}
		out[i] = rational.Clone(row[j])
	}

	return out, nil
}

// String implements fmt.Stringer, one "[...]" line per row.
// Complexity: O(r*c) for string construction.
func (m Matrix) String() string {
	var sb strings.Builder
	for _, row := range m { // iterate over rows
		sb.WriteString(_fmtRowOpen) // open row
		for j, x := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(cellString(x))
		}
		sb.WriteString(_fmtRowClose) // close row
	}

	return sb.String()
}

// isZeroCell treats a nil cell as 0 so predicates never dereference nil.
func isZeroCell(x *big.Rat) bool { return x == nil || x.Sign() == 0 }

// cmpCell compares two cells with nil treated as 0.
func cmpCell(a, b *big.Rat) int {
	if a == nil {
		a = new(big.Rat)
	}
	if b == nil {
		b = new(big.Rat)
	}

	return a.Cmp(b)
}

func cellString(x *big.Rat) string {
	if x == nil {
		return "0"
	}

	return rational.String(x)
}
