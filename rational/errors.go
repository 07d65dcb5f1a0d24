package rational

import "errors"

var (
	// ErrSyntax indicates that a string is not a valid finite rational literal.
	ErrSyntax = errors.New("rational: invalid rational literal")
)
