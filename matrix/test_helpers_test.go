// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Build rational fixtures from short string literals.
//   • Compare matrices exactly with readable failure output.

package matrix_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/ratinterp/matrix"
	"github.com/katalvlaran/ratinterp/rational"
)

// ratComparer lets go-cmp compare *big.Rat by value instead of by internals.
var ratComparer = cmp.Comparer(func(a, b *big.Rat) bool { return a.Cmp(b) == 0 })

// R parses a rational literal or panics (fixtures are always well-formed).
func R(s string) *big.Rat { return rational.MustParse(s) }

// Vec builds a Vector from rational literals.
func Vec(lits ...string) matrix.Vector {
	v := make(matrix.Vector, len(lits))
	for i, s := range lits {
		v[i] = R(s)
	}

	return v
}

// Mat builds a Matrix from rows of rational literals.
func Mat(rows ...[]string) matrix.Matrix {
	m := make(matrix.Matrix, len(rows))
	for i, r := range rows {
		m[i] = Vec(r...)
	}

	return m
}

// CompareExact fails the test with a cell-level diff when got != want.
func CompareExact(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	if diff := cmp.Diff(want, got, ratComparer); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s\ngot:\n%s", diff, got)
	}
}

// RandomInts fills an r×c matrix with integers in [-span, span] from a fixed seed.
func RandomInts(r, c int, span int64, seed int64) matrix.Matrix {
	rng := rand.New(rand.NewSource(seed))
	m := make(matrix.Matrix, r)
	for i := range m {
		row := make(matrix.Vector, c)
		for j := range row {
			row[j] = rational.FromInt(rng.Int63n(2*span+1) - span)
		}
		m[i] = row
	}

	return m
}

// MulVec computes A·x exactly for a square coefficient block of m (first len(x) columns).
func MulVec(m matrix.Matrix, x matrix.Vector) matrix.Vector {
	out := make(matrix.Vector, len(m))
	tmp := new(big.Rat)
	for i, row := range m {
		acc := new(big.Rat)
		for j := range x {
			acc.Add(acc, tmp.Mul(row[j], x[j]))
		}
		out[i] = acc
	}

	return out
}
