package console

import (
	"fmt"
	"strings"

	"github.com/google/shlex"

	"github.com/katalvlaran/ratinterp/matrix"
)

// Tokenize splits line into command words.
//
// Splitting follows shell rules (quotes, escapes, '#' comments). A word that
// opens with '(' but does not close it starts a group; following words are
// appended, separated by one space, until a word ending in ')'. An unclosed
// group at end of line is kept as a token so ParseVector can report it.
func Tokenize(line string) ([]string, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenize, err)
	}

	out := make([]string, 0, len(words))
	var group []string
	for _, w := range words {
		if group == nil {
			if strings.HasPrefix(w, "(") && !strings.HasSuffix(w, ")") {
				group = []string{w}
				continue
			}
			out = append(out, w)
			continue
		}
		group = append(group, w)
		if strings.HasSuffix(w, ")") {
			out = append(out, strings.Join(group, " "))
			group = nil
		}
	}
	if group != nil {
		out = append(out, strings.Join(group, " "))
	}

	return out, nil
}

// ParseVector resolves tok to a Vector: either a "(a b c)" literal of
// rationals or the name of a stored vector. The result is a private copy.
// A nil store knows no names.
func ParseVector(tok string, store *Store) (matrix.Vector, error) {
	if !strings.HasPrefix(tok, "(") {
		if store == nil {
			return nil, fmt.Errorf("%w '%s'", ErrUnknownName, tok)
		}
		v, ok := store.Get(tok)
		if !ok {
			return nil, fmt.Errorf("%w '%s'", ErrUnknownName, tok)
		}

		return v, nil
	}
	if !strings.HasSuffix(tok, ")") {
		return nil, fmt.Errorf("%w '%s'", ErrInvalidVector, tok)
	}

	v, err := matrix.ParseVector(strings.Fields(tok[1 : len(tok)-1])...)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrInvalidVector, tok, err)
	}

	return v, nil
}
