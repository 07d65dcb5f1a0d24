package interp

import "errors"

var (
	// ErrEmptySamples indicates that no sample points were given.
	ErrEmptySamples = errors.New("interp: xs should not be empty")
	// ErrLengthMismatch indicates that xs and ys differ in length.
	ErrLengthMismatch = errors.New("interp: xs and ys should be in the same length")
	// ErrDuplicateX indicates that two samples share the same x value.
	ErrDuplicateX = errors.New("interp: all xs should be unique")
	// ErrNotTriangular indicates that the solved Vandermonde system was not fully
	// determined. It cannot happen for distinct xs; seeing it means the caller
	// skipped ValidateSamples.
	ErrNotTriangular = errors.New("interp: solved system is not triangular")
)
