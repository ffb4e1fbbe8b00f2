// affine.go: Affine cipher, E(x) = (a*x + b) mod n.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// AffineKey is one (a, b) parameterization of the Affine cipher.
type AffineKey struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Affine is the two-parameter linear substitution cipher.
//
// Only letters are transformed: a rune for which unicode.IsLetter is false is
// copied unchanged even if the alphabet contains it. Letters missing from the
// alphabet are copied unchanged as well.
//
// The 'a' coefficient must be coprime with the alphabet length, otherwise
// Encrypt and Decrypt fail with ErrInvalidParameter before touching the input.
//
// Example:
//
//	ct, err := scytale.Affine{}.Encrypt("Hello", 5, 8)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(ct) // Output: Rclla
type Affine struct {
	// Alphabet is the ordered substitution domain. Empty means DefaultAlphabet.
	Alphabet string
}

// Encrypt maps every letter at alphabet index i to index (a*i + b) mod n.
//
// Parameters:
//   - message: The text to encrypt
//   - a: Multiplicative coefficient, must satisfy gcd(a, n) == 1
//   - b: Additive offset, any int (reduced mod n)
//
// Returns:
//   - The encrypted text
//   - An error wrapping ErrInvalidParameter if a is not coprime with n
func (af Affine) Encrypt(message string, a, b int) (string, error) {
	alpha := newAlphabet(af.Alphabet, DefaultAlphabet)
	if err := validateAffineKey(a, alpha.size()); err != nil {
		return "", err
	}
	return strings.Map(affineEncryptRune(alpha, a, b), message), nil
}

// Decrypt reverses Encrypt using the modular inverse of a:
// D(y) = a⁻¹ * (y - b + n) mod n.
//
// Returns an error wrapping ErrInvalidParameter if a is not coprime with n.
func (af Affine) Decrypt(message string, a, b int) (string, error) {
	alpha := newAlphabet(af.Alphabet, DefaultAlphabet)
	mapping, err := affineDecryptRune(alpha, a, b)
	if err != nil {
		return "", err
	}
	return strings.Map(mapping, message), nil
}

// Keys returns every valid (a, b) pair for the alphabet: a in [1, n) coprime
// with n, b in [0, n), ordered by ascending a then ascending b.
func (af Affine) Keys() []AffineKey {
	return affineKeys(newAlphabet(af.Alphabet, DefaultAlphabet).size())
}

// EncryptAll encrypts message with every key returned by Keys.
func (af Affine) EncryptAll(message string) map[AffineKey]string {
	alpha := newAlphabet(af.Alphabet, DefaultAlphabet)
	keys := affineKeys(alpha.size())
	out := make(map[AffineKey]string, len(keys))
	for _, k := range keys {
		out[k] = strings.Map(affineEncryptRune(alpha, k.A, k.B), message)
	}
	return out
}

// DecryptAll decrypts message with every key returned by Keys.
func (af Affine) DecryptAll(message string) map[AffineKey]string {
	alpha := newAlphabet(af.Alphabet, DefaultAlphabet)
	keys := affineKeys(alpha.size())
	out := make(map[AffineKey]string, len(keys))
	for _, k := range keys {
		// keys are coprime by construction
		mapping, _ := affineDecryptRune(alpha, k.A, k.B)
		out[k] = strings.Map(mapping, message)
	}
	return out
}

// EncryptTransformer returns a streaming transformer equivalent to Encrypt.
func (af Affine) EncryptTransformer(a, b int) (transform.Transformer, error) {
	alpha := newAlphabet(af.Alphabet, DefaultAlphabet)
	if err := validateAffineKey(a, alpha.size()); err != nil {
		return nil, err
	}
	return runes.Map(affineEncryptRune(alpha, a, b)), nil
}

// DecryptTransformer returns a streaming transformer equivalent to Decrypt.
func (af Affine) DecryptTransformer(a, b int) (transform.Transformer, error) {
	mapping, err := affineDecryptRune(newAlphabet(af.Alphabet, DefaultAlphabet), a, b)
	if err != nil {
		return nil, err
	}
	return runes.Map(mapping), nil
}

func affineKeys(n int) []AffineKey {
	var keys []AffineKey
	for a := 1; a < n; a++ {
		if !IsCoprime(a, n) {
			continue
		}
		for b := 0; b < n; b++ {
			keys = append(keys, AffineKey{A: a, B: b})
		}
	}
	return keys
}

// affineEncryptRune assumes a has already been validated.
func affineEncryptRune(alpha alphabet, a, b int) func(rune) rune {
	n := alpha.size()
	a, b = NormalizeKey(a, n), NormalizeKey(b, n)
	return func(r rune) rune {
		if !unicode.IsLetter(r) {
			return r
		}
		i, ok := alpha.lookup(r)
		if !ok {
			return r
		}
		return alpha.at((a*i+b)%n, r)
	}
}

func affineDecryptRune(alpha alphabet, a, b int) (func(rune) rune, error) {
	n := alpha.size()
	if err := validateAffineKey(a, n); err != nil {
		return nil, err
	}
	aInv, err := ModInverse(a, n)
	if err != nil {
		return nil, err
	}
	b = NormalizeKey(b, n)
	return func(r rune) rune {
		if !unicode.IsLetter(r) {
			return r
		}
		i, ok := alpha.lookup(r)
		if !ok {
			return r
		}
		return alpha.at(aInv*(i-b+n)%n, r)
	}, nil
}
