// Package analysis provides the letter-frequency statistics classically used
// to characterise ciphertext: Shannon entropy, redundancy, and the index of
// coincidence.
//
// # Alphabet
//
// All measures are defined over the 26-letter Latin alphabet. Input is
// case-folded ('A' and 'a' count as the same letter) and every non-alphabetic
// byte is ignored. A text with no alphabetic content yields an all-zero
// frequency vector and 0.0 for every measure.
//
// # Interpreting the measures
//
//   - [Entropy] ranges over [0, log2(26) ≈ 4.70] bits per character. Natural
//     English sits near 4.1; a uniform letter distribution reaches the maximum.
//   - [Redundancy] is [MaxEntropy] minus the observed entropy — always ≥ 0,
//     and 0 only for a perfectly uniform distribution.
//   - [IndexOfCoincidence] approximates the probability that two randomly
//     drawn letters coincide: ≈ 0.065 for English plaintext or monoalphabetic
//     ciphertext, ≈ 1/26 ≈ 0.038 for polyalphabetic or random text. This is
//     the classical discriminator between the two cipher families, which is
//     why it is exposed as a primitive rather than folded into any cipher.
//
// All functions are pure reads of their input and safe for concurrent use.
package analysis
