// cipher.go: Uniform dispatch surface over the individual ciphers.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"fmt"

	goerrors "github.com/agilira/go-errors"
	"golang.org/x/text/transform"
)

// Names of the built-in ciphers.
const (
	NameCaesar = "caesar"
	NameAtbash = "atbash"
	NameAffine = "affine"
	NameA1Z26  = "a1z26"
	NameMorse  = "morse"
)

// Params carries every option a cipher may read. Each cipher ignores the
// fields it has no use for, and zero values select the cipher's defaults.
type Params struct {
	Alphabet  string `json:"alphabet,omitempty"`  // Substitution domain (Caesar, Atbash, Affine, A1Z26)
	Key       int    `json:"key,omitempty"`       // Shift amount (Caesar, A1Z26)
	A         int    `json:"a,omitempty"`         // Multiplicative coefficient (Affine)
	B         int    `json:"b,omitempty"`         // Additive offset (Affine)
	Separator rune   `json:"separator,omitempty"` // Token delimiter (A1Z26)
}

// Cipher is the capability shared by every cipher in the package.
type Cipher interface {
	Name() string
	Encrypt(message string, p Params) (string, error)
	Decrypt(message string, p Params) (string, error)
}

// Candidate is one result of an enumeration. Key is set for shift ciphers,
// A and B for Affine.
type Candidate struct {
	Key  int    `json:"key"`
	A    int    `json:"a,omitempty"`
	B    int    `json:"b,omitempty"`
	Text string `json:"text"`
}

// Enumerator is implemented by ciphers that can try every parameterization.
// Candidates are returned in a deterministic order.
type Enumerator interface {
	EncryptAll(message string, p Params) ([]Candidate, error)
	DecryptAll(message string, p Params) ([]Candidate, error)
}

// Streamer is implemented by per-character substitution ciphers, which can
// transform unbounded streams. See NewStreamingWriter and NewStreamingReader.
type Streamer interface {
	EncryptTransformer(p Params) (transform.Transformer, error)
	DecryptTransformer(p Params) (transform.Transformer, error)
}

// Builtins returns a fresh instance of every built-in cipher.
func Builtins() []Cipher {
	return []Cipher{caesarCipher{}, atbashCipher{}, affineCipher{}, a1z26Cipher{}, morseCipher{}}
}

type caesarCipher struct{}

func (caesarCipher) Name() string { return NameCaesar }

func (caesarCipher) Encrypt(message string, p Params) (string, error) {
	return Caesar{Alphabet: p.Alphabet}.Encrypt(message, p.Key), nil
}

func (caesarCipher) Decrypt(message string, p Params) (string, error) {
	return Caesar{Alphabet: p.Alphabet}.Decrypt(message, p.Key), nil
}

func (caesarCipher) EncryptAll(message string, p Params) ([]Candidate, error) {
	return shiftCandidates(Caesar{Alphabet: p.Alphabet}.EncryptAll(message)), nil
}

func (caesarCipher) DecryptAll(message string, p Params) ([]Candidate, error) {
	return shiftCandidates(Caesar{Alphabet: p.Alphabet}.DecryptAll(message)), nil
}

func (caesarCipher) EncryptTransformer(p Params) (transform.Transformer, error) {
	return Caesar{Alphabet: p.Alphabet}.EncryptTransformer(p.Key), nil
}

func (caesarCipher) DecryptTransformer(p Params) (transform.Transformer, error) {
	return Caesar{Alphabet: p.Alphabet}.DecryptTransformer(p.Key), nil
}

// shiftCandidates orders a shift-keyed result map by key.
func shiftCandidates(results map[int]string) []Candidate {
	out := make([]Candidate, len(results))
	for key, text := range results {
		out[key] = Candidate{Key: key, Text: text}
	}
	return out
}

type atbashCipher struct{}

func (atbashCipher) Name() string { return NameAtbash }

func (atbashCipher) Encrypt(message string, p Params) (string, error) {
	return Atbash{Alphabet: p.Alphabet}.Encrypt(message), nil
}

func (atbashCipher) Decrypt(message string, p Params) (string, error) {
	return Atbash{Alphabet: p.Alphabet}.Decrypt(message), nil
}

func (atbashCipher) EncryptTransformer(p Params) (transform.Transformer, error) {
	return Atbash{Alphabet: p.Alphabet}.Transformer(), nil
}

func (atbashCipher) DecryptTransformer(p Params) (transform.Transformer, error) {
	return Atbash{Alphabet: p.Alphabet}.Transformer(), nil
}

type affineCipher struct{}

func (affineCipher) Name() string { return NameAffine }

func (affineCipher) Encrypt(message string, p Params) (string, error) {
	return Affine{Alphabet: p.Alphabet}.Encrypt(message, p.A, p.B)
}

func (affineCipher) Decrypt(message string, p Params) (string, error) {
	return Affine{Alphabet: p.Alphabet}.Decrypt(message, p.A, p.B)
}

func (affineCipher) EncryptAll(message string, p Params) ([]Candidate, error) {
	af := Affine{Alphabet: p.Alphabet}
	return affineCandidates(af.Keys(), af.EncryptAll(message)), nil
}

func (affineCipher) DecryptAll(message string, p Params) ([]Candidate, error) {
	af := Affine{Alphabet: p.Alphabet}
	return affineCandidates(af.Keys(), af.DecryptAll(message)), nil
}

func (affineCipher) EncryptTransformer(p Params) (transform.Transformer, error) {
	return Affine{Alphabet: p.Alphabet}.EncryptTransformer(p.A, p.B)
}

func (affineCipher) DecryptTransformer(p Params) (transform.Transformer, error) {
	return Affine{Alphabet: p.Alphabet}.DecryptTransformer(p.A, p.B)
}

// affineCandidates orders an Affine result map by keys.
func affineCandidates(keys []AffineKey, results map[AffineKey]string) []Candidate {
	out := make([]Candidate, 0, len(keys))
	for _, k := range keys {
		out = append(out, Candidate{A: k.A, B: k.B, Text: results[k]})
	}
	return out
}

type a1z26Cipher struct{}

func (a1z26Cipher) Name() string { return NameA1Z26 }

func (a1z26Cipher) Encrypt(message string, p Params) (string, error) {
	return A1Z26{Alphabet: p.Alphabet, Separator: p.Separator}.Encrypt(message, p.Key), nil
}

func (a1z26Cipher) Decrypt(message string, p Params) (string, error) {
	return A1Z26{Alphabet: p.Alphabet, Separator: p.Separator}.Decrypt(message, p.Key), nil
}

type morseCipher struct{}

func (morseCipher) Name() string { return NameMorse }

func (morseCipher) Encrypt(message string, _ Params) (string, error) {
	return Morse{}.Encrypt(message), nil
}

func (morseCipher) Decrypt(message string, _ Params) (string, error) {
	return Morse{}.Decrypt(message), nil
}

// unsupported reports that cipher does not offer mode.
func unsupported(cipher, mode string) error {
	richErr := goerrors.New(ErrCodeUnsupported, fmt.Sprintf("cipher %s does not support %s", cipher, mode))
	return fmt.Errorf("%w: %w", ErrUnsupportedOperation, richErr)
}
