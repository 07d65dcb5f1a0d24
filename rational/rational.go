// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Zero returns a fresh 0.
func Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh 1.
func One() *big.Rat { return big.NewRat(1, 1) }

// FromInt returns a fresh rational equal to the integer v.
func FromInt(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }

// FromFrac returns a fresh rational a/b. It panics if b == 0 (programmer error,
// same contract as big.NewRat).
func FromFrac(a, b int64) *big.Rat { return big.NewRat(a, b) }

// Clone returns an independent copy of x. A nil x clones to 0.
func Clone(x *big.Rat) *big.Rat {
	if x == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(x)
}

// IsZero reports whether x == 0.
func IsZero(x *big.Rat) bool { return x.Sign() == 0 }

// IsOne reports whether x == 1.
// Complexity: O(1) for non-integers, O(len(num)) otherwise.
func IsOne(x *big.Rat) bool {
	// A reduced rational equals one only when it is the integer 1.
	if !x.IsInt() {
		return false
	}

	return x.Num().IsInt64() && x.Num().Int64() == 1
}

// IsPositive reports whether x > 0.
func IsPositive(x *big.Rat) bool { return x.Sign() > 0 }

// Equal reports whether a and b denote the same rational.
func Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// Pow returns x^k as a fresh value, leaving x untouched.
//
// Implementation:
//   - Raise numerator and denominator separately with big.Int.Exp; the result
//     stays reduced because gcd(n, d) == 1 implies gcd(n^k, d^k) == 1.
//
// Behavior highlights:
//   - Pow(0, 0) == 1. big.Int.Exp defines x**0 = 1 for every x, which is
//     exactly what a Vandermonde row for the sample x = 0 needs.
//
// A nil x counts as 0.
//
// Complexity: O(log k) big multiplications.
func Pow(x *big.Rat, k uint) *big.Rat {
	if x == nil {
		x = new(big.Rat)
	}
	e := new(big.Int).SetUint64(uint64(k))     // exponent as big.Int for Exp
	num := new(big.Int).Exp(x.Num(), e, nil)   // n^k
	den := new(big.Int).Exp(x.Denom(), e, nil) // d^k, d > 0 so never zero

	return new(big.Rat).SetFrac(num, den)
}

// decimalLiteral matches the non-fraction forms Parse accepts: an optional
// sign, decimal digits with at most one '.', and an optional decimal exponent.
var decimalLiteral = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// Parse reads a rational literal: an integer ("-3"), a fraction ("7/2") or a
// finite decimal, optionally with exponent ("1.5", "2e-3"). The value is exact.
// Every digit is decimal, so "010/2" is 5; base prefixes ("0x10", "0b11")
// and hex floats are rejected. Anything else, including a zero denominator,
// yields ErrSyntax.
func Parse(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		return parseFraction(s, num, den)
	}
	if !decimalLiteral.MatchString(s) {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	x, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return x, nil
}

// parseFraction reads num/den in base 10. Only the numerator may carry a sign.
func parseFraction(s, num, den string) (*big.Rat, error) {
	if den == "" || den[0] == '+' || den[0] == '-' {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, fmt.Errorf("Parse(%q): numerator: %w", s, ErrSyntax)
	}
	d, ok := new(big.Int).SetString(den, 10)
	if !ok || d.Sign() == 0 {
		return nil, fmt.Errorf("Parse(%q): denominator: %w", s, ErrSyntax)
	}

	return new(big.Rat).SetFrac(n, d), nil
}

// MustParse is like Parse but panics on error. Intended for tests and literals.
func MustParse(s string) *big.Rat {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// String renders x as "n" for integers and "n/d" otherwise.
func String(x *big.Rat) string { return x.RatString() }
