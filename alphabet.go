// alphabet.go: Ordered character sets that define a cipher's substitution domain.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"fmt"
	"unicode"

	goerrors "github.com/agilira/go-errors"
)

const (
	// DefaultAlphabet is the substitution domain used by Caesar, Atbash and Affine
	// when no alphabet is supplied.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

	// DefaultUpperAlphabet is the substitution domain used by A1Z26
	// when no alphabet is supplied.
	DefaultUpperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// alphabet is the resolved form of a caller supplied alphabet string.
// Repeated runes resolve to their first position.
type alphabet struct {
	runes []rune
	index map[rune]int
}

// newAlphabet resolves s, falling back to def when s is empty.
func newAlphabet(s, def string) alphabet {
	if s == "" {
		s = def
	}
	runes := []rune(s)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, seen := index[r]; !seen {
			index[r] = i
		}
	}
	return alphabet{runes: runes, index: index}
}

func (a alphabet) size() int {
	return len(a.runes)
}

// lookup finds r ignoring case. The lowercase form is tried first, then r
// itself, then the uppercase form.
func (a alphabet) lookup(r rune) (int, bool) {
	if i, ok := a.index[unicode.ToLower(r)]; ok {
		return i, true
	}
	if i, ok := a.index[r]; ok {
		return i, true
	}
	i, ok := a.index[unicode.ToUpper(r)]
	return i, ok
}

// lookupExact finds r ignoring case, preferring an exact match.
func (a alphabet) lookupExact(r rune) (int, bool) {
	if i, ok := a.index[r]; ok {
		return i, true
	}
	return a.lookup(r)
}

// at returns the rune at position i in the case of in. Runes without case
// are returned as written.
func (a alphabet) at(i int, in rune) rune {
	r := a.runes[i]
	switch {
	case unicode.IsUpper(in):
		return unicode.ToUpper(r)
	case unicode.IsLower(in):
		return unicode.ToLower(r)
	}
	return r
}

// ValidateAlphabet checks that s can serve as a substitution domain.
//
// Cipher operations accept any alphabet string and never fail on it; this
// function is meant for callers that want to reject ambiguous input up front,
// such as a command-line front end.
//
// Parameters:
//   - s: The alphabet to validate
//
// Returns:
//   - An error wrapping ErrInvalidAlphabet if s is empty or repeats a character
//     (compared case-insensitively), nil otherwise
//
// Example:
//
//	if err := scytale.ValidateAlphabet("abcdefa"); err != nil {
//		log.Fatal(err) // 'a' repeated
//	}
func ValidateAlphabet(s string) error {
	if s == "" {
		richErr := goerrors.New(ErrCodeInvalidAlphabet, "alphabet cannot be empty")
		return fmt.Errorf("%w: %w", ErrInvalidAlphabet, richErr)
	}
	seen := make(map[rune]int)
	for i, r := range []rune(s) {
		folded := unicode.ToLower(r)
		if j, dup := seen[folded]; dup {
			richErr := goerrors.New(ErrCodeInvalidAlphabet, fmt.Sprintf("character %q at position %d repeats position %d", r, i, j))
			return fmt.Errorf("%w: %w", ErrInvalidAlphabet, richErr)
		}
		seen[folded] = i
	}
	return nil
}
