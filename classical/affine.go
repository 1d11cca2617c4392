package classical

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bdiallo/go-classical-ciphers/modmath"
)

// Affine is the substitution cipher C = (A·P + B) mod 26 over zero-based
// letter positions.
//
// A must be coprime with 26 (odd and not divisible by 13) or the transform is
// undefined: both directions reject such keys with [ErrKeyNotInvertible]
// rather than producing a lossy mapping. B may be any integer. The key is
// validated on every Encrypt/Decrypt call, so a hand-built value is checked
// the same as one from [NewAffine].
type Affine struct {
	A, B int
}

// NewAffine returns an affine cipher with multiplier a and offset b,
// validating up front that a is invertible modulo 26. The valid multipliers
// are the twelve integers coprime with 26: 1, 3, 5, 7, 9, 11, 15, 17, 19,
// 21, 23, 25 (mod 26).
func NewAffine(a, b int) (Affine, error) {
	c := Affine{A: a, B: b}
	if _, err := c.inverse(); err != nil {
		return Affine{}, err
	}
	return c, nil
}

// Name implements [Cipher].
func (c Affine) Name() CipherName { return NameAffine }

// Encrypt maps every letter position P to (A·P + B) mod 26, preserving case.
// Non-alphabetic bytes pass through unchanged.
func (c Affine) Encrypt(plaintext string) (string, error) {
	if _, err := c.inverse(); err != nil {
		return "", err
	}
	var out strings.Builder
	out.Grow(len(plaintext))
	for i := 0; i < len(plaintext); i++ {
		b := plaintext[i]
		if isLetter(b) {
			base := caseBase(b)
			p := int(b - base)
			b = byte(modmath.Mod(c.A*p+c.B, alphabetSize)) + base
		}
		out.WriteByte(b)
	}
	return out.String(), nil
}

// Decrypt maps every letter position C back to A⁻¹·(C − B) mod 26, where A⁻¹
// is the modular inverse of the multiplier.
func (c Affine) Decrypt(ciphertext string) (string, error) {
	aInv, err := c.inverse()
	if err != nil {
		return "", err
	}
	var out strings.Builder
	out.Grow(len(ciphertext))
	for i := 0; i < len(ciphertext); i++ {
		b := ciphertext[i]
		if isLetter(b) {
			base := caseBase(b)
			ct := int(b - base)
			b = byte(modmath.Mod(aInv*(ct-c.B), alphabetSize)) + base
		}
		out.WriteByte(b)
	}
	return out.String(), nil
}

// inverse validates the multiplier and returns A⁻¹ mod 26.
func (c Affine) inverse() (int, error) {
	aInv, err := modmath.ModInverse(c.A, alphabetSize)
	if err != nil {
		if errors.Is(err, modmath.ErrNoInverse) {
			return 0, fmt.Errorf("%w: affine multiplier a=%d must be coprime with 26", ErrKeyNotInvertible, c.A)
		}
		return 0, err
	}
	return aInv, nil
}
