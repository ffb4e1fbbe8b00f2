// kdf.go: Passphrase based key selection using Argon2id.
//
// Classical ciphers have tiny key spaces, so deriving a key from a passphrase
// adds no security. It does let two parties agree on a shift or an Affine pair
// by remembering a phrase instead of numbers.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"encoding/binary"
	"fmt"

	goerrors "github.com/agilira/go-errors"
	"golang.org/x/crypto/argon2"
)

// Default Argon2 parameters for key derivation.
const (
	// DefaultTime is the default number of iterations for Argon2id.
	DefaultTime = 3

	// DefaultMemory is the default memory usage in MB for Argon2id.
	DefaultMemory = 64

	// DefaultThreads is the default number of threads for Argon2id.
	DefaultThreads = 4

	// MinSaltSize is the shortest salt accepted by the derivation functions.
	MinSaltSize = 8
)

// KDFParams defines custom parameters for Argon2id key derivation.
//
// If a field is zero, the library default is used.
type KDFParams struct {
	// Time is the number of iterations. If zero, DefaultTime is used.
	Time uint32 `json:"time,omitempty" yaml:"time,omitempty"`

	// Memory is the memory usage in MB. If zero, DefaultMemory is used.
	Memory uint32 `json:"memory,omitempty" yaml:"memory,omitempty"`

	// Threads is the degree of parallelism. If zero, DefaultThreads is used.
	Threads uint8 `json:"threads,omitempty" yaml:"threads,omitempty"`
}

// FastKDFParams returns Argon2id parameters optimized for speed.
//
// Parameters: Time=1, Memory=8MB, Threads=1
func FastKDFParams() *KDFParams {
	return &KDFParams{
		Time:    1,
		Memory:  8,
		Threads: 1,
	}
}

// DeriveShift derives a Caesar or A1Z26 key in [0, n) from a passphrase.
//
// The same passphrase, salt, n and params always produce the same key.
//
// Parameters:
//   - passphrase: The phrase to derive from (cannot be empty)
//   - salt: At least MinSaltSize bytes
//   - n: The alphabet length (must be at least 2)
//   - params: Argon2id parameters (nil for defaults)
//
// Returns:
//   - The derived shift
//   - An error wrapping ErrInvalidParameter for invalid input
//
// Example:
//
//	key, err := scytale.DeriveShift([]byte("meet me at dawn"), []byte("rendezvous"), 26, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ct := scytale.CaesarEncrypt("attack", key)
func DeriveShift(passphrase, salt []byte, n int, params *KDFParams) (int, error) {
	v, err := deriveIndex(passphrase, salt, n, params)
	if err != nil {
		return 0, err
	}
	return int(v % uint64(n)), nil // #nosec G115 -- n validated positive
}

// DeriveAffineKey derives an Affine (a, b) pair valid for an alphabet of length n.
//
// The pair is chosen from the enumeration order of Affine.Keys, so it always
// satisfies gcd(a, n) == 1.
func DeriveAffineKey(passphrase, salt []byte, n int, params *KDFParams) (AffineKey, error) {
	v, err := deriveIndex(passphrase, salt, n, params)
	if err != nil {
		return AffineKey{}, err
	}
	keys := affineKeys(n)
	return keys[v%uint64(len(keys))], nil // #nosec G115 -- len(keys) > 0 for n >= 2
}

func deriveIndex(passphrase, salt []byte, n int, params *KDFParams) (uint64, error) {
	if len(passphrase) == 0 {
		richErr := goerrors.New(ErrCodeKeyDerivation, "passphrase cannot be empty")
		return 0, fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	if len(salt) < MinSaltSize {
		richErr := goerrors.New(ErrCodeKeyDerivation, fmt.Sprintf("salt must be at least %d bytes (got %d)", MinSaltSize, len(salt)))
		return 0, fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	if n < 2 {
		richErr := goerrors.New(ErrCodeKeyDerivation, fmt.Sprintf("alphabet length must be at least 2 (got %d)", n))
		return 0, fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}

	time := uint32(DefaultTime)
	memory := uint32(DefaultMemory * 1024)
	threads := uint8(DefaultThreads)
	if params != nil {
		if params.Time > 0 {
			time = params.Time
		}
		if params.Memory > 0 {
			memory = params.Memory * 1024
		}
		if params.Threads > 0 {
			threads = params.Threads
		}
	}

	out := argon2.IDKey(passphrase, salt, time, memory, threads, 8)
	return binary.BigEndian.Uint64(out), nil
}
