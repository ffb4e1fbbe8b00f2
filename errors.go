// errors.go: Public error values and error codes for the cipher family.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"errors"
)

// Public standard errors for drop-in compatibility.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidParameter is returned when a cipher parameter cannot be used,
	// e.g. an Affine 'a' coefficient that is not coprime with the alphabet length.
	ErrInvalidParameter = errors.New("scytale: invalid parameter")

	// ErrInvalidAlphabet is returned by ValidateAlphabet for empty alphabets or
	// alphabets with repeated characters.
	ErrInvalidAlphabet = errors.New("scytale: invalid alphabet")

	// ErrCipherNotFound is returned when a registry has no cipher with the requested name.
	ErrCipherNotFound = errors.New("scytale: cipher not found")

	// ErrCipherExists is returned when registering a name twice.
	ErrCipherExists = errors.New("scytale: cipher already registered")

	// ErrUnsupportedOperation is returned when a cipher does not offer the requested mode,
	// e.g. enumeration on Atbash.
	ErrUnsupportedOperation = errors.New("scytale: unsupported operation")

	// ErrPluginFailed is returned when a cipher plugin fails or reports an unsuccessful response.
	ErrPluginFailed = errors.New("scytale: cipher plugin failed")
)

// Error codes for rich error handling
const (
	ErrCodeNotCoprime      = "SCYTALE_NOT_COPRIME"
	ErrCodeNoInverse       = "SCYTALE_NO_MODULAR_INVERSE"
	ErrCodeInvalidParam    = "SCYTALE_INVALID_PARAMETER"
	ErrCodeInvalidAlphabet = "SCYTALE_INVALID_ALPHABET"
	ErrCodeCipherNotFound  = "SCYTALE_CIPHER_NOT_FOUND"
	ErrCodeCipherExists    = "SCYTALE_CIPHER_EXISTS"
	ErrCodeUnsupported     = "SCYTALE_UNSUPPORTED_OPERATION"
	ErrCodeKeyDerivation   = "SCYTALE_KEY_DERIVATION"
	ErrCodePluginFailed    = "SCYTALE_PLUGIN_FAILED"
)
