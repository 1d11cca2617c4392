package classical

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bdiallo/go-classical-ciphers/modmath"
)

// Hill is the 2×2 matrix block cipher: letters are taken in pairs and
// multiplied by the key matrix modulo 26.
//
// Unlike the stream-style ciphers in this package, Hill normalises its
// input: encryption keeps only the alphabetic characters, folds them to
// uppercase, and appends a single 'X' when their count is odd so that the
// text divides into pairs. Decryption therefore returns the padded uppercase
// letter sequence — spacing, punctuation, original case, and any trailing
// 'X' padding are not recoverable from the ciphertext. This loss is inherent
// to the scheme; the round trip is exact only for input that is already an
// even-length run of letters.
//
// The key matrix must be invertible modulo 26 (determinant coprime with 26,
// i.e. not divisible by 2 or 13). Both directions validate this on every
// call and fail with [ErrKeyNotInvertible] otherwise; decryption derives the
// inverse matrix fresh each call, keeping the value stateless.
type Hill struct {
	Key modmath.Matrix2x2
}

// NewHill returns a Hill cipher for the given key matrix, validating up
// front that its determinant is invertible modulo 26.
func NewHill(key modmath.Matrix2x2) (Hill, error) {
	c := Hill{Key: key}
	if err := c.validate(); err != nil {
		return Hill{}, err
	}
	return c, nil
}

// Name implements [Cipher].
func (c Hill) Name() CipherName { return NameHill }

// Encrypt strips plaintext to its uppercase letters, pads with one 'X' if
// the count is odd, and maps each pair (p1,p2) to the pair
// (A·p1+B·p2, C·p1+D·p2) mod 26 under the key matrix.
func (c Hill) Encrypt(plaintext string) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}

	letters := extractLetters(plaintext)
	if len(letters)%2 != 0 {
		letters = append(letters, 'X')
	}
	return c.applyBlocks(letters, c.Key), nil
}

// Decrypt inverts Encrypt: it derives the key matrix's inverse modulo 26 and
// applies the same block transform with it.
//
// The ciphertext must be an even-length run of letters — anything else
// cannot have come out of Encrypt and is rejected with
// [ErrMalformedCiphertext]. Lowercase letters are accepted and folded, the
// same normalisation encryption applies.
func (c Hill) Decrypt(ciphertext string) (string, error) {
	if len(ciphertext)%2 != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is odd", ErrMalformedCiphertext, len(ciphertext))
	}
	letters := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i++ {
		b := ciphertext[i]
		if !isLetter(b) {
			return "", fmt.Errorf("%w: non-alphabetic byte %q at position %d", ErrMalformedCiphertext, b, i)
		}
		letters[i] = toUpper(b)
	}

	inv, err := c.Key.InverseMod(alphabetSize)
	if err != nil {
		if errors.Is(err, modmath.ErrNoInverse) {
			return "", fmt.Errorf("%w: hill determinant %d must be coprime with 26",
				ErrKeyNotInvertible, c.Key.Determinant(alphabetSize))
		}
		return "", err
	}
	return c.applyBlocks(letters, inv), nil
}

// applyBlocks runs the pairwise matrix transform over an even-length run of
// uppercase letters.
func (c Hill) applyBlocks(letters []byte, m modmath.Matrix2x2) string {
	var out strings.Builder
	out.Grow(len(letters))
	for i := 0; i < len(letters); i += 2 {
		p1 := int(letters[i] - 'A')
		p2 := int(letters[i+1] - 'A')
		c1, c2 := m.MulVec(p1, p2, alphabetSize)
		out.WriteByte(byte(c1) + 'A')
		out.WriteByte(byte(c2) + 'A')
	}
	return out.String()
}

// validate rejects key matrices that cannot be undone modulo 26.
func (c Hill) validate() error {
	det := c.Key.Determinant(alphabetSize)
	if _, err := modmath.ModInverse(det, alphabetSize); err != nil {
		if errors.Is(err, modmath.ErrNoInverse) {
			return fmt.Errorf("%w: hill determinant %d must be coprime with 26", ErrKeyNotInvertible, det)
		}
		return err
	}
	return nil
}

// extractLetters returns the uppercase alphabetic subsequence of text.
func extractLetters(text string) []byte {
	letters := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if isLetter(text[i]) {
			letters = append(letters, toUpper(text[i]))
		}
	}
	return letters
}
