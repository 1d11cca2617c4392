package classical

import (
	"strings"

	"github.com/bdiallo/go-classical-ciphers/modmath"
)

// Vigenere is the polyalphabetic shift cipher: each letter of the text is
// rotated by the next letter of the key, with the key cycled indefinitely.
//
// Only the alphabetic characters of Key form the key stream — punctuation,
// digits, and spaces inside the key are skipped without effect, and key case
// is irrelevant ("LeMoN" and "LEMON" are the same key). The key cursor
// advances only when a text letter is consumed; non-alphabetic text bytes
// pass through without moving it, so interleaved punctuation never shifts
// the key stream out of phase.
//
// A key with no alphabetic character defines no shift at all and is rejected
// with [ErrKeyNoLetters] ([ErrEmptyKey] for the empty string). The cursor is
// local to each call, so one Vigenere value may be used concurrently.
type Vigenere struct {
	Key string
}

// NewVigenere returns a Vigenère cipher for key, validating up front that it
// contains at least one alphabetic character.
func NewVigenere(key string) (Vigenere, error) {
	c := Vigenere{Key: key}
	if err := c.validate(); err != nil {
		return Vigenere{}, err
	}
	return c, nil
}

// Name implements [Cipher].
func (c Vigenere) Name() CipherName { return NameVigenere }

// Encrypt shifts every letter of plaintext forward by the next key letter.
func (c Vigenere) Encrypt(plaintext string) (string, error) {
	return c.transform(plaintext, +1)
}

// Decrypt shifts every letter of ciphertext back by the next key letter,
// restoring the exact input of Encrypt under the same key.
func (c Vigenere) Decrypt(ciphertext string) (string, error) {
	return c.transform(ciphertext, -1)
}

// transform applies the key stream with the given direction (+1 to encrypt,
// -1 to decrypt). The cursor walks the raw key and skips its non-alphabetic
// bytes; validate guarantees at least one letter, so the skip loop always
// terminates within one wrap.
func (c Vigenere) transform(text string, direction int) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(text))
	cursor := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		if !isLetter(b) {
			out.WriteByte(b)
			continue
		}
		for !isLetter(c.Key[cursor%len(c.Key)]) {
			cursor++
		}
		shift := int(toUpper(c.Key[cursor%len(c.Key)]) - 'A')
		cursor++

		base := caseBase(b)
		out.WriteByte(byte(modmath.Mod(int(b-base)+direction*shift, alphabetSize)) + base)
	}
	return out.String(), nil
}

// validate rejects keys that carry no shift information.
func (c Vigenere) validate() error {
	if len(c.Key) == 0 {
		return ErrEmptyKey
	}
	for i := 0; i < len(c.Key); i++ {
		if isLetter(c.Key[i]) {
			return nil
		}
	}
	return ErrKeyNoLetters
}
