package poly

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/ratinterp/matrix"
	"github.com/katalvlaran/ratinterp/rational"
)

// Eval returns Σ coeffs[i]·x^i exactly. An empty vector evaluates to 0.
// Uses Horner's scheme, which agrees with the 0^0 = 1 convention at x = 0.
func Eval(coeffs matrix.Vector, x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		if coeffs[i] != nil {
			acc.Add(acc, coeffs[i])
		}
	}

	return acc
}

// Format renders coeffs as "f(x)=…", highest degree first:
//
//	[-4 15/2 -3 1/2]  ->  f(x)=1/2*x^3-3*x^2+15/2*x-4
//	[0 1 0 -1]        ->  f(x)=-x^3+x
//	[0 0]             ->  f(x)=0
func Format(coeffs matrix.Vector) string {
	var sb strings.Builder
	sb.WriteString("f(x)=")

	first := true
	for i := len(coeffs) - 1; i >= 0; i-- {
		a := coeffs[i]
		if a == nil || rational.IsZero(a) {
			continue
		}
		if !first && rational.IsPositive(a) {
			sb.WriteByte('+') // negatives bring their own sign
		}
		first = false

		unit := rational.IsOne(a) || isMinusOne(a)
		switch {
		case i > 0 && rational.IsOne(a):
			// bare x
		case i > 0 && isMinusOne(a):
			sb.WriteByte('-')
		default:
			sb.WriteString(rational.String(a))
		}
		if i == 0 {
			continue
		}
		if !unit {
			sb.WriteByte('*')
		}
		sb.WriteByte('x')
		if i > 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(i))
		}
	}
	if first {
		sb.WriteByte('0') // every coefficient was zero (or there were none)
	}

	return sb.String()
}

// FormatVector renders v as "(a b c)", the console's literal syntax.
func FormatVector(v matrix.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		if x == nil {
			parts[i] = "0"
			continue
		}
		parts[i] = rational.String(x)
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// Func returns a float64 approximation of the polynomial for plotting.
// The coefficients are converted once; evaluation is in float64.
func Func(coeffs matrix.Vector) func(float64) float64 {
	fs := make([]float64, len(coeffs))
	for i, a := range coeffs {
		if a != nil {
			fs[i], _ = a.Float64() // nearest float, exactness is irrelevant for a plot
		}
	}

	return func(x float64) float64 {
		acc := 0.0
		for i := len(fs) - 1; i >= 0; i-- {
			acc = acc*x + fs[i]
		}

		return acc
	}
}

func isMinusOne(x *big.Rat) bool {
	return x.IsInt() && x.Num().IsInt64() && x.Num().Int64() == -1
}
