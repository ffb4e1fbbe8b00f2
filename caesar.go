// caesar.go: Caesar shift cipher over a configurable alphabet.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Caesar is the fixed-shift substitution cipher.
//
// The zero value uses DefaultAlphabet. Characters are looked up in the
// alphabet ignoring case, shifted, and re-cased to match the input; anything
// outside the alphabet (punctuation, whitespace, digits unless the alphabet
// contains them) is copied unchanged.
//
// Example:
//
//	c := scytale.Caesar{}
//	fmt.Println(c.Encrypt("Hello, World!", 3)) // Output: Khoor, Zruog!
//
//	custom := scytale.Caesar{Alphabet: "abcdefghijklmnopqrstuvwxyz0123456789"}
//	fmt.Println(custom.Encrypt("Earth-616", 3)) // Output: Hduwk-949
type Caesar struct {
	// Alphabet is the ordered substitution domain. Empty means DefaultAlphabet.
	Alphabet string
}

// Encrypt shifts every alphabet character of message forward by key.
//
// The key is normalized into [0, n) first, so negative keys and keys larger
// than the alphabet wrap around. Key 0 returns message unchanged.
func (c Caesar) Encrypt(message string, key int) string {
	return strings.Map(c.shifter(key), message)
}

// Decrypt reverses Encrypt for the same key and alphabet.
func (c Caesar) Decrypt(message string, key int) string {
	return strings.Map(c.shifter(-c.normalize(key)), message)
}

// EncryptAll encrypts message with every shift from 0 to n-1.
//
// The returned map is keyed by shift amount and always has exactly n entries;
// entry 0 is the message itself.
func (c Caesar) EncryptAll(message string) map[int]string {
	alpha := newAlphabet(c.Alphabet, DefaultAlphabet)
	out := make(map[int]string, alpha.size())
	for key := 0; key < alpha.size(); key++ {
		out[key] = strings.Map(shiftRune(alpha, key), message)
	}
	return out
}

// DecryptAll decrypts message with every shift from 0 to n-1, keyed by shift amount.
func (c Caesar) DecryptAll(message string) map[int]string {
	alpha := newAlphabet(c.Alphabet, DefaultAlphabet)
	out := make(map[int]string, alpha.size())
	for key := 0; key < alpha.size(); key++ {
		out[key] = strings.Map(shiftRune(alpha, -key), message)
	}
	return out
}

// EncryptTransformer returns a streaming transformer equivalent to Encrypt.
func (c Caesar) EncryptTransformer(key int) transform.Transformer {
	return runes.Map(c.shifter(key))
}

// DecryptTransformer returns a streaming transformer equivalent to Decrypt.
func (c Caesar) DecryptTransformer(key int) transform.Transformer {
	return runes.Map(c.shifter(-c.normalize(key)))
}

func (c Caesar) normalize(key int) int {
	return NormalizeKey(key, newAlphabet(c.Alphabet, DefaultAlphabet).size())
}

func (c Caesar) shifter(shift int) func(rune) rune {
	return shiftRune(newAlphabet(c.Alphabet, DefaultAlphabet), shift)
}

// shiftRune builds the per-character mapping for a shift; shift may be any int.
func shiftRune(alpha alphabet, shift int) func(rune) rune {
	n := alpha.size()
	shift = NormalizeKey(shift, n)
	return func(r rune) rune {
		i, ok := alpha.lookup(r)
		if !ok {
			return r
		}
		return alpha.at((i+shift)%n, r)
	}
}

// CaesarEncrypt encrypts message with key over DefaultAlphabet.
func CaesarEncrypt(message string, key int) string {
	return Caesar{}.Encrypt(message, key)
}

// CaesarDecrypt decrypts message with key over DefaultAlphabet.
func CaesarDecrypt(message string, key int) string {
	return Caesar{}.Decrypt(message, key)
}
