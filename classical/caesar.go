package classical

import (
	"strings"

	"github.com/bdiallo/go-classical-ciphers/modmath"
)

// Caesar is the classic single-shift substitution cipher: every letter is
// rotated Shift positions within its case's 26-letter range.
//
// Any integer is a valid shift — it is reduced modulo 26 before use, so
// negative values wrap (a shift of −1 behaves like +25). Decryption is
// defined purely as encryption under the additive inverse shift; there is no
// separate decryption code path.
type Caesar struct {
	Shift int
}

// NewCaesar returns a Caesar cipher with the given shift. Every shift is
// valid, so unlike the other constructors it cannot fail; it exists for
// symmetry with the rest of the package.
func NewCaesar(shift int) Caesar {
	return Caesar{Shift: shift}
}

// Name implements [Cipher].
func (c Caesar) Name() CipherName { return NameCaesar }

// Encrypt rotates every letter of plaintext by the configured shift,
// preserving case and copying non-alphabetic bytes through unchanged.
func (c Caesar) Encrypt(plaintext string) (string, error) {
	return rotate(plaintext, c.Shift), nil
}

// Decrypt rotates every letter back by the configured shift. It is exactly
// Encrypt under −Shift.
func (c Caesar) Decrypt(ciphertext string) (string, error) {
	return rotate(ciphertext, -c.Shift), nil
}

// rotate applies a single alphabet rotation to every letter of text.
// It is shared by Caesar and Vigenère, whose per-letter operation is the
// same rotation under a key-stream-chosen shift.
func rotate(text string, shift int) string {
	shift = modmath.Mod(shift, alphabetSize)

	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		if isLetter(b) {
			base := caseBase(b)
			b = byte((int(b-base)+shift)%alphabetSize) + base
		}
		out.WriteByte(b)
	}
	return out.String()
}
