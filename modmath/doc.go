// Package modmath provides the small modular-arithmetic primitives shared by
// the classical ciphers: modular inverses and 2×2 matrix arithmetic modulo a
// fixed alphabet size.
//
// The package is deliberately minimal. [ModInverse] uses an exhaustive search
// over [1, m-1], which is exact and fast for the only modulus the ciphers ever
// use (m = 26). [Matrix2x2] is a fixed-size value type; there is no N×N
// generalisation because no cipher in this module needs one.
//
// All functions are pure and safe for concurrent use.
package modmath
