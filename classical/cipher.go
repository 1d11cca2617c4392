package classical

// alphabetSize is the size of the Latin alphabet all transforms operate over.
const alphabetSize = 26

// CipherName identifies a cipher family. Using a named string type prevents
// accidental confusion with plain strings in [Manager] call sites.
type CipherName string

const (
	// NameCaesar selects the Caesar shift cipher.
	NameCaesar CipherName = "caesar"
	// NameAffine selects the affine cipher.
	NameAffine CipherName = "affine"
	// NameVigenere selects the Vigenère polyalphabetic cipher.
	NameVigenere CipherName = "vigenere"
	// NameHill selects the 2×2 Hill block cipher.
	NameHill CipherName = "hill"
)

// Cipher is the interface satisfied by all cipher families in this package.
// Consumers should depend on the interface rather than a concrete type — the
// strategy pattern — so that cipher families stay interchangeable.
//
// Implementations are value types with no call-outliving state; a single
// value is safe for concurrent use by multiple goroutines.
type Cipher interface {
	// Encrypt transforms plaintext into ciphertext and returns it as a newly
	// allocated string. On failure no partial result is returned.
	Encrypt(plaintext string) (string, error)

	// Decrypt inverts Encrypt for the same key material. For every cipher but
	// [Hill], Decrypt(Encrypt(t)) == t exactly; Hill returns the padded
	// uppercase letter sequence instead (see [Hill]).
	Decrypt(ciphertext string) (string, error)

	// Name returns the cipher family identifier.
	Name() CipherName
}

// isUpper reports whether b is an uppercase ASCII letter.
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// isLower reports whether b is a lowercase ASCII letter.
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

// isLetter reports whether b is an ASCII letter of either case.
func isLetter(b byte) bool { return isUpper(b) || isLower(b) }

// caseBase returns 'A' or 'a' according to b's case. b must be a letter.
func caseBase(b byte) byte {
	if isUpper(b) {
		return 'A'
	}
	return 'a'
}

// toUpper folds an ASCII letter to uppercase; other bytes pass through.
func toUpper(b byte) byte {
	if isLower(b) {
		return b - 'a' + 'A'
	}
	return b
}
