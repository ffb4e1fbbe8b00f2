// registry_test.go: Test cases for the cipher registry and uniform dispatch.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	goplugins "github.com/agilira/go-plugins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agilira/scytale"
)

// reverseCipher is a toy cipher used to exercise registration.
type reverseCipher struct{}

func (reverseCipher) Name() string { return "reverse" }

func (reverseCipher) Encrypt(message string, _ scytale.Params) (string, error) {
	r := []rune(message)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r), nil
}

func (c reverseCipher) Decrypt(message string, p scytale.Params) (string, error) {
	return c.Encrypt(message, p)
}

// upperPlugin is an external cipher served through go-plugins.
type upperPlugin struct {
	calls int
}

func (p *upperPlugin) Info() goplugins.PluginInfo {
	return goplugins.PluginInfo{Name: "upper", Version: "1.0.0"}
}

func (p *upperPlugin) Execute(_ context.Context, _ goplugins.ExecutionContext, req scytale.CipherRequest) (scytale.CipherResponse, error) {
	p.calls++
	switch req.Operation {
	case scytale.OpEncrypt:
		return scytale.CipherResponse{Success: true, Cipher: "upper", Text: strings.ToUpper(req.Text)}, nil
	case scytale.OpDecrypt:
		return scytale.CipherResponse{Success: true, Cipher: "upper", Text: strings.ToLower(req.Text)}, nil
	}
	return scytale.CipherResponse{Error: "operation not supported by upper"}, nil
}

func (p *upperPlugin) Health(context.Context) goplugins.HealthStatus {
	return goplugins.HealthStatus{Status: goplugins.StatusHealthy}
}

func (p *upperPlugin) Close() error { return nil }

func newPluginManager(t *testing.T, plugins ...goplugins.Plugin[scytale.CipherRequest, scytale.CipherResponse]) *goplugins.Manager[scytale.CipherRequest, scytale.CipherResponse] {
	t.Helper()
	pm := goplugins.NewManager[scytale.CipherRequest, scytale.CipherResponse](slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, p := range plugins {
		require.NoError(t, pm.Register(p))
	}
	t.Cleanup(func() {
		// Health monitors stop on their own ticker; do not wait for them.
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		_ = pm.Shutdown(ctx)
	})
	return pm
}

func TestBuiltins(t *testing.T) {
	names := make([]string, 0)
	for _, c := range scytale.Builtins() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{
		scytale.NameCaesar, scytale.NameAtbash, scytale.NameAffine, scytale.NameA1Z26, scytale.NameMorse,
	}, names)
}

func TestCipherInterface_MatchesTypedAPI(t *testing.T) {
	reg := scytale.NewRegistry(nil, nil)

	tests := []struct {
		cipher    string
		params    scytale.Params
		plaintext string
		encrypted string
		decrypted string
	}{
		{scytale.NameCaesar, scytale.Params{Key: 3}, "Hello, World!", "Khoor, Zruog!", "Hello, World!"},
		{scytale.NameAtbash, scytale.Params{}, "Hello, World!", "Svool, Dliow!", "Hello, World!"},
		{scytale.NameAffine, scytale.Params{A: 5, B: 8}, "Hello", "Rclla", "Hello"},
		{scytale.NameA1Z26, scytale.Params{Separator: '-'}, "Hello World!", "8-5-12-12-15-23-15-18-12-4", "HELLOWORLD"},
		{scytale.NameMorse, scytale.Params{}, "Hello, World!", helloMorse, "HELLO, WORLD!"},
	}

	for _, tt := range tests {
		t.Run(tt.cipher, func(t *testing.T) {
			c, err := reg.Get(tt.cipher)
			require.NoError(t, err)

			enc, err := c.Encrypt(tt.plaintext, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.encrypted, enc)

			dec, err := c.Decrypt(enc, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.decrypted, dec)
		})
	}
}

func TestRegistry_GetAndNames(t *testing.T) {
	reg := scytale.NewRegistry(nil, nil)
	assert.Nil(t, reg.PluginManager())
	assert.Equal(t, []string{"a1z26", "affine", "atbash", "caesar", "morse"}, reg.Names())

	c, err := reg.Get("")
	require.NoError(t, err)
	assert.Equal(t, scytale.NameCaesar, c.Name())

	_, err = reg.Get("vigenere")
	assert.ErrorIs(t, err, scytale.ErrCipherNotFound)
}

func TestRegistry_CustomDefault(t *testing.T) {
	reg := scytale.NewRegistry(&scytale.RegistryConfig{DefaultCipher: scytale.NameMorse}, nil)
	resp := reg.Process(context.Background(), scytale.CipherRequest{Operation: scytale.OpEncrypt, Text: "sos"})
	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, scytale.NameMorse, resp.Cipher)
	assert.Equal(t, "... --- ...", resp.Text)
}

func TestRegistry_Register(t *testing.T) {
	reg := scytale.NewRegistry(nil, nil)
	require.NoError(t, reg.Register(reverseCipher{}))
	assert.Contains(t, reg.Names(), "reverse")

	err := reg.Register(reverseCipher{})
	assert.ErrorIs(t, err, scytale.ErrCipherExists)

	err = reg.Register(nil)
	assert.ErrorIs(t, err, scytale.ErrInvalidParameter)

	resp := reg.Process(context.Background(), scytale.CipherRequest{
		Operation: scytale.OpEncrypt, Cipher: "reverse", Text: "abc",
	})
	require.True(t, resp.Success, resp.Error)
	assert.Equal(t, "cba", resp.Text)

	resp = reg.Process(context.Background(), scytale.CipherRequest{
		Operation: scytale.OpDecryptAll, Cipher: "reverse", Text: "abc",
	})
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestRegistry_PluginDispatch(t *testing.T) {
	plugin := &upperPlugin{}
	pm := newPluginManager(t, plugin)
	reg := scytale.NewRegistry(nil, pm)
	ctx := context.Background()

	assert.Same(t, pm, reg.PluginManager())
	assert.Equal(t, []string{"a1z26", "affine", "atbash", "caesar", "morse", "upper"}, reg.Names())

	t.Run("routed to plugin", func(t *testing.T) {
		resp := reg.Process(ctx, scytale.CipherRequest{Operation: scytale.OpEncrypt, Cipher: "upper", Text: "Hello"})
		require.True(t, resp.Success, resp.Error)
		assert.Equal(t, "upper", resp.Cipher)
		assert.Equal(t, "HELLO", resp.Text)
		assert.False(t, resp.ProcessedAt.IsZero())
		assert.Equal(t, 1, plugin.calls)
	})

	t.Run("plugin reports failure", func(t *testing.T) {
		resp := reg.Process(ctx, scytale.CipherRequest{Operation: scytale.OpDecryptAll, Cipher: "upper", Text: "x"})
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "operation not supported by upper")
	})

	t.Run("builtins are not forwarded", func(t *testing.T) {
		calls := plugin.calls
		resp := reg.Process(ctx, scytale.CipherRequest{Operation: scytale.OpEncrypt, Cipher: scytale.NameCaesar, Text: "abc", Params: scytale.Params{Key: 1}})
		require.True(t, resp.Success, resp.Error)
		assert.Equal(t, "bcd", resp.Text)
		assert.Equal(t, calls, plugin.calls)
	})

	t.Run("unknown name without plugin", func(t *testing.T) {
		resp := reg.Process(ctx, scytale.CipherRequest{Operation: scytale.OpEncrypt, Cipher: "enigma"})
		assert.False(t, resp.Success)
	})
}

func TestRegistry_Process(t *testing.T) {
	reg := scytale.NewRegistry(nil, nil)
	ctx := context.Background()
	before := time.Now().Add(-time.Minute)

	t.Run("encrypt", func(t *testing.T) {
		resp := reg.Process(ctx, scytale.CipherRequest{
			Operation: scytale.OpEncrypt, Cipher: scytale.NameCaesar, Text: "Hello, World!", Params: scytale.Params{Key: 3},
		})
		require.True(t, resp.Success, resp.Error)
		assert.Equal(t, "Khoor, Zruog!", resp.Text)
		assert.Empty(t, resp.Candidates)
		assert.True(t, resp.ProcessedAt.After(before))
	})

	t.Run("decrypt all caesar", func(t *testing.T) {
		resp := reg.Process(ctx, scytale.CipherRequest{
			Operation: scytale.OpDecryptAll, Cipher: scytale.NameCaesar, Text: "Khoor, Zruog!",
		})
		require.True(t, resp.Success, resp.Error)
		require.Len(t, resp.Candidates, 26)
		for i, c := range resp.Candidates {
			assert.Equal(t, i, c.Key)
		}
		assert.Equal(t, "Hello, World!", resp.Candidates[3].Text)
	})

	t.Run("encrypt all affine", func(t *testing.T) {
		resp := reg.Process(ctx, scytale.CipherRequest{
			Operation: scytale.OpEncryptAll, Cipher: scytale.NameAffine, Text: "Affine", Params: scytale.Params{Alphabet: "abcdef"},
		})
		require.True(t, resp.Success, resp.Error)
		require.Len(t, resp.Candidates, 12)
		assert.Equal(t, scytale.Candidate{A: 1, B: 0, Text: "Affine"}, resp.Candidates[0])
		assert.Equal(t, scytale.Candidate{A: 5, B: 5, Text: "Faainb"}, resp.Candidates[11])
	})

	t.Run("invalid affine key", func(t *testing.T) {
		resp := reg.Process(ctx, scytale.CipherRequest{
			Operation: scytale.OpEncrypt, Cipher: scytale.NameAffine, Text: "Hello", Params: scytale.Params{A: 13, B: 1},
		})
		assert.False(t, resp.Success)
		assert.Empty(t, resp.Text)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("enumeration unsupported", func(t *testing.T) {
		for _, name := range []string{scytale.NameAtbash, scytale.NameA1Z26, scytale.NameMorse} {
			resp := reg.Process(ctx, scytale.CipherRequest{Operation: scytale.OpEncryptAll, Cipher: name, Text: "x"})
			assert.False(t, resp.Success, name)
			assert.Equal(t, name, resp.Cipher)
		}
	})

	t.Run("unknown operation", func(t *testing.T) {
		resp := reg.Process(ctx, scytale.CipherRequest{Operation: "rotate", Cipher: scytale.NameCaesar})
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "rotate")
	})

	t.Run("unknown cipher", func(t *testing.T) {
		resp := reg.Process(ctx, scytale.CipherRequest{Operation: scytale.OpEncrypt, Cipher: "enigma"})
		assert.False(t, resp.Success)
		assert.Equal(t, "enigma", resp.Cipher)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		resp := reg.Process(cctx, scytale.CipherRequest{Operation: scytale.OpEncrypt, Cipher: scytale.NameCaesar, Text: "a"})
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, context.Canceled.Error())
	})
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := scytale.NewRegistry(nil, nil)
	ctx := context.Background()

	const numGoroutines = 32
	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			msg := strings.Repeat("Concurrent message ", id%5+1)
			enc := reg.Process(ctx, scytale.CipherRequest{
				Operation: scytale.OpEncrypt, Cipher: scytale.NameAffine, Text: msg, Params: scytale.Params{A: 7, B: id},
			})
			if !enc.Success {
				t.Errorf("goroutine %d encrypt failed: %s", id, enc.Error)
				return
			}
			dec := reg.Process(ctx, scytale.CipherRequest{
				Operation: scytale.OpDecrypt, Cipher: scytale.NameAffine, Text: enc.Text, Params: scytale.Params{A: 7, B: id},
			})
			if dec.Text != msg {
				t.Errorf("goroutine %d round trip mismatch", id)
			}
			_ = reg.Names()
		}(i)
	}

	// Registration races with lookups.
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := reg.Register(reverseCipher{}); err != nil {
			t.Errorf("register failed: %v", err)
		}
	}()
	wg.Wait()
}
