package classical

import "errors"

// Sentinel errors returned by cipher operations.
//
// Callers should use errors.Is for comparisons:
//
//	_, err := cipher.Encrypt(text)
//	if errors.Is(err, classical.ErrKeyNotInvertible) {
//	    // the key cannot be undone modulo 26; pick another
//	}
//
// Failures are deterministic functions of the input — retrying never helps —
// and no partial output is ever returned alongside an error.
var (
	// ErrEmptyKey is returned when a cipher requiring key text is given an
	// empty string.
	ErrEmptyKey = errors.New("classical: key must not be empty")

	// ErrKeyNoLetters is returned when a Vigenère key contains no alphabetic
	// characters. Such a key would define no shift at all, so it is rejected
	// rather than silently treated as the identity.
	ErrKeyNoLetters = errors.New("classical: key contains no alphabetic characters")

	// ErrKeyNotInvertible is returned when key material is not invertible
	// modulo 26: an affine multiplier sharing a factor with 26, or a Hill
	// matrix whose determinant is divisible by 2 or 13. Encryption under such
	// a key could not be undone, so both directions reject it.
	ErrKeyNotInvertible = errors.New("classical: key is not invertible modulo 26")

	// ErrMalformedCiphertext is returned by Hill decryption when the
	// ciphertext cannot have been produced by the encryptor: an odd number of
	// characters, or bytes outside the alphabet.
	ErrMalformedCiphertext = errors.New("classical: malformed ciphertext")

	// ErrCipherNotFound is returned by [Manager] methods when the requested
	// cipher name has not been registered.
	ErrCipherNotFound = errors.New("classical: cipher not found")

	// ErrNilCipher is returned by [Manager.Register] when a nil [Cipher] is
	// supplied.
	ErrNilCipher = errors.New("classical: cipher must not be nil")

	// ErrEmptyCipherName is returned by [Manager.Register] when the supplied
	// name is an empty string.
	ErrEmptyCipherName = errors.New("classical: cipher name must not be empty")
)
