package modmath

import "fmt"

// Mod returns a mod m normalised into [0, m-1]. Go's % operator keeps the
// sign of the dividend, so a separate helper is needed wherever a could be
// negative.
func Mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}

// ModInverse returns the unique x in [1, m-1] such that (a·x) mod m == 1.
//
// It returns [ErrNoInverse] when a and m are not coprime, and
// [ErrInvalidModulus] when m < 2. The search is exhaustive over [1, m-1] —
// O(m), which is exact and more than fast enough for the alphabet-sized
// moduli the ciphers use.
func ModInverse(a, m int) (int, error) {
	if m < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidModulus, m)
	}
	a = Mod(a, m)
	for x := 1; x < m; x++ {
		if (a*x)%m == 1 {
			return x, nil
		}
	}
	return 0, fmt.Errorf("%w: %d has no inverse modulo %d", ErrNoInverse, a, m)
}
