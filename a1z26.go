// a1z26.go: A1Z26 numeric substitution (A=1, B=2, ... Z=26).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultSeparator joins the numeric tokens produced by A1Z26.
const DefaultSeparator = ' '

// A1Z26 replaces each alphabet character with its 1-based position,
// optionally shifted by a key, and joins the numbers with a separator.
//
// The zero value uses DefaultUpperAlphabet and DefaultSeparator. The separator
// is assumed not to be a digit; this is not validated.
//
// Example:
//
//	z := scytale.A1Z26{}
//	fmt.Println(z.Encrypt("Hello World!", 0)) // Output: 8 5 12 12 15 23 15 18 12 4
//	fmt.Println(z.Decrypt("8 5 12 12 15", 0)) // Output: HELLO
type A1Z26 struct {
	// Alphabet is the ordered substitution domain. Empty means DefaultUpperAlphabet.
	Alphabet string

	// Separator delimits numeric tokens. Zero means DefaultSeparator.
	Separator rune
}

func (z A1Z26) separator() rune {
	if z.Separator == 0 {
		return DefaultSeparator
	}
	return z.Separator
}

// Encrypt uppercases message and emits ((index + key) mod n) + 1 for every
// character found in the alphabet. Characters outside the alphabet are dropped
// without a placeholder, so they do not survive a round trip.
func (z A1Z26) Encrypt(message string, key int) string {
	alpha := newAlphabet(z.Alphabet, DefaultUpperAlphabet)
	n := alpha.size()
	key = NormalizeKey(key, n)
	sep := z.separator()

	buf := getBuffer()
	defer putBuffer(buf)
	out := *buf

	for _, r := range strings.ToUpper(message) {
		i, ok := alpha.lookupExact(r)
		if !ok {
			continue
		}
		out = strconv.AppendInt(out, int64((i+key)%n+1), 10)
		out = utf8.AppendRune(out, sep)
	}
	out = trimLastRune(out, sep)

	*buf = out
	return string(out)
}

// Decrypt turns separator delimited numbers back into alphabet characters.
//
// Consecutive ASCII digits form a token; a separator or the end of input
// closes it and appends alphabet[(v - 1 + n - key) mod n]. Any other character
// is skipped without closing the token, and empty tokens produce nothing.
// Tokens of any length are accepted. Output characters come from the alphabet
// verbatim, so with the default alphabet the result is uppercase.
func (z A1Z26) Decrypt(encryptedMessage string, key int) string {
	alpha := newAlphabet(z.Alphabet, DefaultUpperAlphabet)
	n := alpha.size()
	key = NormalizeKey(key, n)
	sep := z.separator()

	buf := getBuffer()
	defer putBuffer(buf)
	out := *buf

	// value holds the token reduced mod n
	value, pending := 0, false
	flush := func() {
		if !pending {
			return
		}
		out = utf8.AppendRune(out, alpha.runes[(value-1-key+2*n)%n])
		value, pending = 0, false
	}

	for _, r := range encryptedMessage {
		switch {
		case r >= '0' && r <= '9':
			value = (value*10 + int(r-'0')) % n
			pending = true
		case r == sep:
			flush()
		}
	}
	flush()
	out = trimLastRune(out, sep)

	*buf = out
	return string(out)
}
