// helpers_test.go: Shared helpers for the cipher tests.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale_test

import (
	"unicode"
	"unicode/utf8"
)

// roundTrippable reports whether s survives a substitution round trip over an
// ASCII alphabet. Invalid UTF-8 is replaced by strings.Map, and non-ASCII runes
// that case-fold onto ASCII letters (such as the Kelvin sign) come back as the
// ASCII letter.
func roundTrippable(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if r <= unicode.MaxASCII {
			continue
		}
		if unicode.ToLower(r) <= unicode.MaxASCII || unicode.ToUpper(r) <= unicode.MaxASCII {
			return false
		}
	}
	return true
}
