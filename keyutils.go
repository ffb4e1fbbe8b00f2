// keyutils.go: Key normalization and modular arithmetic shared by the keyed ciphers.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

// NormalizeKey reduces key into the range [0, n).
//
// Negative keys wrap around, so for a 26 letter alphabet a key of -3 behaves
// exactly like 23 and a key of 49 like 23.
//
// Parameters:
//   - key: The shift amount to normalize (any int)
//   - n: The alphabet length
//
// Returns:
//   - The normalized key, or 0 if n is not positive
//
// Example:
//
//	fmt.Println(scytale.NormalizeKey(-3, 26)) // Output: 23
func NormalizeKey(key, n int) int {
	if n <= 0 {
		return 0
	}
	key %= n
	if key < 0 {
		key += n
	}
	return key
}

// GCD returns the greatest common divisor of a and b. The result is never negative.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IsCoprime reports whether gcd(a, n) == 1.
func IsCoprime(a, n int) bool {
	return GCD(a, n) == 1
}

// ModInverse returns x in [0, n) such that a*x ≡ 1 (mod n).
//
// The inverse is computed with the extended Euclidean algorithm.
//
// Parameters:
//   - a: The value to invert (any int, reduced mod n)
//   - n: The modulus (must be positive)
//
// Returns:
//   - The modular multiplicative inverse of a
//   - An error wrapping ErrInvalidParameter if n is not positive or a has no
//     inverse mod n (gcd(a, n) != 1)
//
// Example:
//
//	inv, err := scytale.ModInverse(5, 26)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(inv) // Output: 21
func ModInverse(a, n int) (int, error) {
	if n <= 0 {
		richErr := goerrors.New(ErrCodeInvalidParam, fmt.Sprintf("modulus must be positive (got %d)", n))
		return 0, fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	a = NormalizeKey(a, n)

	oldR, r := a, n
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		richErr := goerrors.New(ErrCodeNoInverse, fmt.Sprintf("%d has no inverse modulo %d", a, n))
		return 0, fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	return NormalizeKey(oldS, n), nil
}

// validateAffineKey rejects an 'a' coefficient that is not coprime with n.
func validateAffineKey(a, n int) error {
	if !IsCoprime(a, n) {
		richErr := goerrors.New(ErrCodeNotCoprime, fmt.Sprintf("parameter 'a' (%d) must be coprime with the alphabet length (%d)", a, n))
		return fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	return nil
}
