// atbash.go: Atbash mirror substitution.
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

// Atbash replaces the character at position i of the alphabet with the one at
// position n-1-i. It has no key and is its own inverse for every alphabet.
//
// Example:
//
//	fmt.Println(scytale.Atbash{}.Encrypt("Hello, World!")) // Output: Svool, Dliow!
type Atbash struct {
	// Alphabet is the ordered substitution domain. Empty means DefaultAlphabet.
	Alphabet string
}

// Encrypt mirrors every alphabet character of message, preserving case.
func (a Atbash) Encrypt(message string) string {
	return strings.Map(a.mirror(), message)
}

// Decrypt is identical to Encrypt.
func (a Atbash) Decrypt(message string) string {
	return a.Encrypt(message)
}

// Transformer returns a streaming transformer equivalent to Encrypt (and Decrypt).
func (a Atbash) Transformer() transform.Transformer {
	return runes.Map(a.mirror())
}

func (a Atbash) mirror() func(rune) rune {
	alpha := newAlphabet(a.Alphabet, DefaultAlphabet)
	last := alpha.size() - 1
	return func(r rune) rune {
		i, ok := alpha.lookup(r)
		if !ok {
			return r
		}
		return alpha.at(last-i, r)
	}
}
