// Package rational pins down the exact scalar every other package in ratinterp
// computes with: an arbitrary-precision, always-reduced rational number backed
// by math/big.Rat.
//
// 🚀 What does it add on top of big.Rat?
//
//	big.Rat already gives exact + - * / and ordering. This package adds the
//	small contract the elimination and interpolation kernels rely on:
//	  • IsZero / IsOne / IsPositive predicates
//	  • Pow with a non-negative integer exponent and the convention 0^0 = 1
//	  • Parse / String for the textual console ("3", "-7/2", "1.5")
//
// ⚙️ Usage:
//
//	x, err := rational.Parse("3/2")
//	if err != nil {
//	  // handle rational.ErrSyntax
//	}
//	y := rational.Pow(x, 3) // 27/8, x is not modified
//	fmt.Println(rational.String(y))
//
// All functions allocate their results and never mutate their arguments.
package rational
