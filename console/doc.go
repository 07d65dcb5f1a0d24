// Package console is the interactive front end of ratinterp: a line-oriented
// command interpreter over a store of named coefficient vectors.
//
// A session looks like:
//
//	>>itrp (1 2 3 4) (1 3 5 10)
//	(-4 15/2 -3 1/2)
//	saved as 'p1' in map.
//	>>print p1
//	f(x)=1/2*x^3-3*x^2+15/2*x-4
//	>>eval p1 5
//	21
//
// Words are split with shell rules, then parenthesized literals spanning
// several words are glued back into a single token. Wherever a command takes
// a vector, a stored name may be given instead.
//
// User mistakes (missing arguments, unknown names, bad literals) are printed
// and the loop continues; only I/O failures end Run with an error.
package console
