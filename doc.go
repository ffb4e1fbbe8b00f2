// Package scytale implements a family of classical ciphers for Go applications.
//
// The package offers:
//   - Caesar shift substitution over a configurable alphabet
//   - Atbash mirror substitution
//   - Affine substitution, E(x) = (a*x + b) mod n, with modular inverse decryption
//   - A1Z26 numeric substitution with configurable separator and key
//   - Morse code translation over a fixed table
//   - Enumeration ("brute force") of every key for Caesar and Affine
//   - A uniform Cipher interface and a named Registry for dispatch by name
//   - Streaming transforms for large inputs, built on golang.org/x/text
//   - Passphrase based key selection with Argon2id
//
// None of these ciphers are secure. They are meant for puzzles, teaching,
// legacy formats and CTF style challenges; enumeration of every key is a
// feature, not a flaw.
//
// # Quick Start
//
//	fmt.Println(scytale.CaesarEncrypt("Hello, World!", 3)) // Khoor, Zruog!
//	fmt.Println(scytale.Atbash{}.Encrypt("Hello, World!")) // Svool, Dliow!
//
//	ct, err := scytale.Affine{}.Encrypt("Hello", 5, 8)
//	if err != nil {
//		log.Fatal(err) // 'a' not coprime with the alphabet length
//	}
//	fmt.Println(ct) // Rclla
//
//	fmt.Println(scytale.A1Z26{}.Encrypt("Hello World!", 0)) // 8 5 12 12 15 23 15 18 12 4
//	fmt.Println(scytale.MorseEncrypt("SOS"))                // ... --- ...
//
// # Alphabets
//
// Every alphabet-driven cipher takes an ordered character set; the zero value
// selects DefaultAlphabet (A1Z26: DefaultUpperAlphabet). Lookups ignore case
// and the output keeps the case of the input character. Characters outside the
// alphabet pass through unchanged (Caesar, Atbash, Affine) or are dropped
// (A1Z26).
//
//	c := scytale.Caesar{Alphabet: "abcdefghijklmnopqrstuvwxyz0123456789"}
//	fmt.Println(c.Encrypt("Earth-616", 3)) // Hduwk-949
//
// # Enumeration
//
//	for key, text := range scytale.Caesar{}.DecryptAll("Khoor") {
//		fmt.Println(key, text)
//	}
//
//	af := scytale.Affine{Alphabet: "abcdef"}
//	results := af.EncryptAll("Affine")
//	for _, k := range af.Keys() { // deterministic order
//		fmt.Println(k.A, k.B, results[k])
//	}
//
// # Error Handling
//
// Only Affine can fail on its parameters. Errors wrap the package sentinels
// and carry a github.com/agilira/go-errors code:
//
//	_, err := scytale.Affine{}.Encrypt("data", 13, 0)
//	if errors.Is(err, scytale.ErrInvalidParameter) {
//		// 13 shares a factor with 26
//	}
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. The Morse table is built
// once at package initialization and never modified.
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra library
// SPDX-License-Identifier: MPL-2.0
package scytale
