// Package matrix is the exact linear-algebra engine of ratinterp: a tiny
// row-major model of rational matrices plus the Gaussian elimination kernels
// that reduce them.
//
// The matrix package provides:
//
//   - Vector / Matrix: plain slices of *big.Rat, rows are row vectors.
//   - Eliminate: forward elimination with partial pivoting (first non-zero
//     entry wins) and pivot normalization, producing row-echelon form.
//   - BackSubstitute: clears entries above every pivot of an echelon matrix,
//     producing reduced row-echelon form.
//   - Solve: BackSubstitute ∘ Eliminate.
//   - IsTriangular: the "non-zero diagonal, zeros to the left" check used to
//     assert that a square system was fully determined.
//
// Arithmetic is exact, so there is no tolerance anywhere in this package:
// a value is zero or it is not. Singular, over- and under-determined systems
// are not errors; they simply produce fewer pivots than rows.
//
// See example_test.go for usage patterns.
package matrix
