package modmath

import "fmt"

// Matrix2x2 is a 2×2 integer matrix, used as key material by the Hill cipher.
//
// It is a plain value type: copy it freely, compare it with ==. Entries may
// be any integers; operations normalise them modulo the supplied modulus.
type Matrix2x2 struct {
	A, B int // first row
	C, D int // second row
}

// Determinant returns (A·D − B·C) mod m, normalised into [0, m-1].
func (k Matrix2x2) Determinant(m int) int {
	return Mod(k.A*k.D-k.B*k.C, m)
}

// InverseMod returns the inverse of k modulo m: the adjugate scaled by the
// determinant's modular inverse, each entry normalised into [0, m-1].
//
// It returns [ErrNoInverse] when the determinant is not invertible modulo m,
// in which case k cannot be used as a Hill key.
func (k Matrix2x2) InverseMod(m int) (Matrix2x2, error) {
	det := k.Determinant(m)
	detInv, err := ModInverse(det, m)
	if err != nil {
		return Matrix2x2{}, fmt.Errorf("matrix determinant %d: %w", det, err)
	}
	return Matrix2x2{
		A: Mod(k.D*detInv, m),
		B: Mod(-k.B*detInv, m),
		C: Mod(-k.C*detInv, m),
		D: Mod(k.A*detInv, m),
	}, nil
}

// MulVec multiplies k by the column vector (x, y) modulo m and returns the
// resulting pair, each component normalised into [0, m-1].
func (k Matrix2x2) MulVec(x, y, m int) (int, int) {
	return Mod(k.A*x+k.B*y, m), Mod(k.C*x+k.D*y, m)
}
