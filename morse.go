// morse.go: Morse code translation over a fixed code table.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MorseWordSeparator is the code word for a space.
	MorseWordSeparator = "/"

	// MorseUnknownCode is emitted by Encrypt for a character missing from the
	// table. It is the same text as MorseWordSeparator but is not followed by a
	// space, so it fuses with the next code word.
	MorseUnknownCode = "/"

	// MorseUnknownChar is emitted by Decrypt for a code word missing from the table.
	MorseUnknownChar = '?'
)

// morseTable lists the code table in lookup priority order.
var morseTable = []struct {
	char rune
	code string
}{
	{'A', ".-"}, {'B', "-..."}, {'C', "-.-."}, {'D', "-.."}, {'E', "."},
	{'F', "..-."}, {'G', "--."}, {'H', "...."}, {'I', ".."}, {'J', ".---"},
	{'K', "-.-"}, {'L', ".-.."}, {'M', "--"}, {'N', "-."}, {'O', "---"},
	{'P', ".--."}, {'Q', "--.-"}, {'R', ".-."}, {'S', "..."}, {'T', "-"},
	{'U', "..-"}, {'V', "...-"}, {'W', ".--"}, {'X', "-..-"}, {'Y', "-.--"},
	{'Z', "--.."}, {'0', "-----"}, {'1', ".----"}, {'2', "..---"}, {'3', "...--"},
	{'4', "....-"}, {'5', "....."}, {'6', "-...."}, {'7', "--..."}, {'8', "---.."},
	{'9', "----."}, {'.', ".-.-.-"}, {',', "--..--"}, {' ', MorseWordSeparator}, {'?', "..--.."},
	{'!', "-.-.--"}, {'@', ".--.-."}, {'&', ".-..."}, {':', "---..."}, {';', "-.-.-."},
	{'(', "-.--."}, {')', "-.--.-"}, {'=', "-...-"}, {'+', ".-.-."}, {'-', "-....-"},
	{'_', "..--.-"}, {'"', ".-..-."}, {'$', "...-..-"}, {'%', "-..-.--"}, {'/', "-..-."},
	{'\'', ".----."},
}

// Read-only after init.
var (
	morseEncode map[rune]string
	morseDecode map[string]rune
)

func init() {
	morseEncode = make(map[rune]string, len(morseTable))
	morseDecode = make(map[string]rune, len(morseTable))
	for _, e := range morseTable {
		morseEncode[e.char] = e.code
		if _, dup := morseDecode[e.code]; !dup {
			morseDecode[e.code] = e.char
		}
	}
}

// Morse translates between text and International Morse code.
// The code table is fixed; there is no alphabet or key.
//
// Translation is best effort and never fails: unknown characters become
// MorseUnknownCode when encoding and unknown code words become
// MorseUnknownChar when decoding.
type Morse struct{}

// Encrypt uppercases message and emits each character's code word followed by
// a space. Trailing whitespace is trimmed.
//
// A character missing from the table is written as a bare "/" with no
// trailing space. That marker cannot be told apart from a word separator when
// it ends the message, and otherwise fuses with the next code word, which then
// decodes as MorseUnknownChar.
func (Morse) Encrypt(message string) string {
	buf := getBuffer()
	defer putBuffer(buf)
	out := *buf

	for _, r := range strings.ToUpper(message) {
		code, ok := morseEncode[r]
		if !ok {
			out = append(out, MorseUnknownCode...)
			continue
		}
		out = append(out, code...)
		out = append(out, ' ')
	}

	*buf = out
	return strings.TrimRightFunc(string(out), unicode.IsSpace)
}

// Decrypt splits morseCode on single spaces and translates each code word.
//
// "/" decodes to a space. Any other code word is looked up in the table;
// unknown words, including the empty word between two consecutive spaces,
// decode to MorseUnknownChar. Surrounding whitespace is trimmed from the result.
// Empty input is a single empty code word and decodes to "?".
func (Morse) Decrypt(morseCode string) string {
	buf := getBuffer()
	defer putBuffer(buf)
	out := *buf

	for _, word := range strings.Split(morseCode, " ") {
		if word == MorseWordSeparator {
			out = append(out, ' ')
			continue
		}
		r, ok := morseDecode[word]
		if !ok {
			r = MorseUnknownChar
		}
		out = utf8.AppendRune(out, r)
	}

	*buf = out
	return strings.TrimSpace(string(out))
}

// MorseEncrypt is shorthand for Morse{}.Encrypt.
func MorseEncrypt(message string) string {
	return Morse{}.Encrypt(message)
}

// MorseDecrypt is shorthand for Morse{}.Decrypt.
func MorseDecrypt(morseCode string) string {
	return Morse{}.Decrypt(morseCode)
}
