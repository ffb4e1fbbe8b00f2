// kdf_test.go: Test cases for passphrase based key selection.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agilira/scytale"
)

var (
	kdfPassphrase = []byte("meet me at dawn")
	kdfSalt       = []byte("rendezvous")
)

func TestDeriveShift(t *testing.T) {
	params := scytale.FastKDFParams()

	key, err := scytale.DeriveShift(kdfPassphrase, kdfSalt, 26, params)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, key, 0)
	assert.Less(t, key, 26)

	again, err := scytale.DeriveShift(kdfPassphrase, kdfSalt, 26, params)
	require.NoError(t, err)
	assert.Equal(t, key, again, "derivation must be deterministic")

	msg := "Attack at dawn"
	assert.Equal(t, msg, scytale.CaesarDecrypt(scytale.CaesarEncrypt(msg, key), again))
}

func TestDeriveShift_SpreadsAcrossKeys(t *testing.T) {
	params := &scytale.KDFParams{Time: 1, Memory: 1, Threads: 1}
	seen := make(map[int]bool)
	for _, p := range []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel"} {
		key, err := scytale.DeriveShift([]byte(p), kdfSalt, 26, params)
		require.NoError(t, err)
		seen[key] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestDeriveAffineKey(t *testing.T) {
	params := scytale.FastKDFParams()
	for _, n := range []int{2, 6, 26, 36} {
		k, err := scytale.DeriveAffineKey(kdfPassphrase, kdfSalt, n, params)
		require.NoError(t, err, "n=%d", n)
		assert.True(t, scytale.IsCoprime(k.A, n), "n=%d a=%d", n, k.A)
		assert.GreaterOrEqual(t, k.B, 0)
		assert.Less(t, k.B, n)
	}

	k, err := scytale.DeriveAffineKey(kdfPassphrase, kdfSalt, 26, params)
	require.NoError(t, err)
	enc, err := scytale.Affine{}.Encrypt("Attack at dawn", k.A, k.B)
	require.NoError(t, err)
	dec, err := scytale.Affine{}.Decrypt(enc, k.A, k.B)
	require.NoError(t, err)
	assert.Equal(t, "Attack at dawn", dec)
}

func TestDerive_InvalidInput(t *testing.T) {
	params := scytale.FastKDFParams()
	tests := []struct {
		name       string
		passphrase []byte
		salt       []byte
		n          int
	}{
		{"empty passphrase", nil, kdfSalt, 26},
		{"short salt", kdfPassphrase, []byte("short"), 26},
		{"alphabet too small", kdfPassphrase, kdfSalt, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scytale.DeriveShift(tt.passphrase, tt.salt, tt.n, params)
			assert.ErrorIs(t, err, scytale.ErrInvalidParameter)
			_, err = scytale.DeriveAffineKey(tt.passphrase, tt.salt, tt.n, params)
			assert.ErrorIs(t, err, scytale.ErrInvalidParameter)
		})
	}
}

func TestDeriveShift_DefaultParams(t *testing.T) {
	if testing.Short() {
		t.Skip("default Argon2id parameters are slow")
	}
	key, err := scytale.DeriveShift(kdfPassphrase, kdfSalt, 26, nil)
	require.NoError(t, err)
	assert.Less(t, key, 26)
}
