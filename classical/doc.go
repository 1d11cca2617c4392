// Package classical implements four classical symmetric substitution ciphers
// over the 26-letter Latin alphabet: Caesar shift, affine, Vigenère, and the
// 2×2 Hill block cipher.
//
// # Character handling
//
// Every cipher maps an alphabetic byte to an alphabetic byte of the same case
// and copies non-alphabetic bytes through unchanged; pass-through bytes never
// consume key material. The one exception is [Hill], which by construction
// strips input to its uppercase letters and may append a single 'X' of
// padding — see its documentation for the (deliberately) lossy round-trip
// behaviour.
//
// # Architecture
//
// The central abstraction is the [Cipher] interface. Four implementations
// ship with this package: [Caesar], [Affine], [Vigenere], and [Hill]. All
// are small value types whose key material sits in exported fields; the
// New* constructors additionally validate the key up front and are the
// recommended way to build one. Key validation is also repeated on every
// Encrypt/Decrypt call, so a zero or hand-built value fails cleanly instead
// of producing garbage.
//
// The [Manager] is a named driver registry and dispatcher: register cipher
// instances under their names, then encrypt or decrypt through the Manager
// by name alone.
//
// # Quick start
//
//	c, err := classical.NewVigenere("LEMON")
//	if err != nil { log.Fatal(err) }
//
//	ct, _ := c.Encrypt("ATTACKATDAWN") // "LXFOPVEFRNHR"
//	pt, _ := c.Decrypt(ct)             // "ATTACKATDAWN"
//
// # Scope
//
// These ciphers are study material for cryptanalysis, not protection for
// real data. Nothing in this package is secure against a modern attacker;
// for actual encryption use an AEAD from the standard library.
package classical
