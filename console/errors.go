package console

import "errors"

var (
	// ErrUnknownName indicates a vector name that is not in the store.
	ErrUnknownName = errors.New("console: unknown name")

	// ErrInvalidVector indicates a malformed "( ... )" literal.
	ErrInvalidVector = errors.New("console: invalid vector")

	// ErrTokenize indicates a line shlex could not split (e.g. an open quote).
	ErrTokenize = errors.New("console: cannot split line")
)
