// Package poly evaluates and renders polynomials given as coefficient vectors,
// lowest degree first: [a0, a1, …, an] is a0 + a1·x + … + an·x^n.
package poly
