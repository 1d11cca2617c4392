package modmath

import "errors"

// Sentinel errors returned by modular-arithmetic operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := modmath.ModInverse(4, 26)
//	if errors.Is(err, modmath.ErrNoInverse) {
//	    // 4 and 26 share a factor; no inverse exists
//	}
var (
	// ErrNoInverse is returned when no modular inverse exists, i.e. when the
	// value and the modulus are not coprime.
	ErrNoInverse = errors.New("modmath: no modular inverse exists")

	// ErrInvalidModulus is returned when the modulus is less than 2.
	ErrInvalidModulus = errors.New("modmath: modulus must be at least 2")
)
