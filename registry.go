// registry.go: Named cipher registry with request/response dispatch
//
// The registry gives front ends (command line, services, plugins built on
// github.com/agilira/go-plugins) a single entry point that selects a cipher by
// name and runs one operation described by a CipherRequest.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	goerrors "github.com/agilira/go-errors"
	goplugins "github.com/agilira/go-plugins"
	"github.com/agilira/go-timecache"
)

// Operations understood by Registry.Process.
const (
	OpEncrypt    = "encrypt"
	OpDecrypt    = "decrypt"
	OpEncryptAll = "encrypt_all"
	OpDecryptAll = "decrypt_all"
)

// CipherRequest describes one cipher operation.
type CipherRequest struct {
	Operation string `json:"operation"` // One of the Op* constants
	Cipher    string `json:"cipher"`    // Cipher name; empty selects the registry default
	Text      string `json:"text"`      // Input text
	Params    Params `json:"params"`    // Cipher parameters
}

// CipherResponse carries the outcome of a CipherRequest.
type CipherResponse struct {
	Success     bool        `json:"success"`              // Operation success status
	Cipher      string      `json:"cipher"`               // Name of the cipher that ran
	Text        string      `json:"text,omitempty"`       // Result of encrypt/decrypt
	Candidates  []Candidate `json:"candidates,omitempty"` // Result of encrypt_all/decrypt_all
	Error       string      `json:"error,omitempty"`      // Error message (if any)
	ProcessedAt time.Time   `json:"processed_at"`         // Completion timestamp
}

// RegistryConfig provides configuration for the registry
type RegistryConfig struct {
	DefaultCipher string `json:"default_cipher"` // Cipher used when a request names none
}

// Registry manages named ciphers
type Registry struct {
	mu            sync.RWMutex
	pluginManager *goplugins.Manager[CipherRequest, CipherResponse] // Plugin manager for external ciphers
	ciphers       map[string]Cipher
	config        *RegistryConfig
}

// NewRegistry creates a registry preloaded with the built-in ciphers.
//
// Parameters:
//   - config: Registry configuration (nil defaults to Caesar as default cipher)
//   - pluginManager: Optional go-plugins manager for external cipher plugins (may be nil)
//
// Example:
//
//	reg := scytale.NewRegistry(nil, nil)
//	resp := reg.Process(ctx, scytale.CipherRequest{
//		Operation: scytale.OpEncrypt,
//		Cipher:    scytale.NameCaesar,
//		Text:      "Hello",
//		Params:    scytale.Params{Key: 3},
//	})
//	fmt.Println(resp.Text) // Output: Khoor
func NewRegistry(config *RegistryConfig, pluginManager *goplugins.Manager[CipherRequest, CipherResponse]) *Registry {
	if config == nil {
		config = &RegistryConfig{DefaultCipher: NameCaesar}
	}

	r := &Registry{
		pluginManager: pluginManager,
		ciphers:       make(map[string]Cipher),
		config:        config,
	}
	for _, c := range Builtins() {
		r.ciphers[c.Name()] = c
	}
	return r
}

// PluginManager returns the plugin manager the registry was created with, or nil.
func (r *Registry) PluginManager() *goplugins.Manager[CipherRequest, CipherResponse] {
	return r.pluginManager
}

// Register adds a cipher under its Name.
func (r *Registry) Register(c Cipher) error {
	if c == nil {
		richErr := goerrors.New(ErrCodeInvalidParam, "cipher cannot be nil")
		return fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	name := c.Name()
	if name == "" {
		richErr := goerrors.New(ErrCodeInvalidParam, "cipher name cannot be empty")
		return fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ciphers[name]; exists {
		richErr := goerrors.New(ErrCodeCipherExists, fmt.Sprintf("cipher %s already registered", name))
		return fmt.Errorf("%w: %w", ErrCipherExists, richErr)
	}
	r.ciphers[name] = c
	return nil
}

// Get returns a cipher by name. An empty name selects the configured default.
func (r *Registry) Get(name string) (Cipher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.config.DefaultCipher
	}

	c, exists := r.ciphers[name]
	if !exists {
		richErr := goerrors.New(ErrCodeCipherNotFound, fmt.Sprintf("no cipher named %q", name))
		return nil, fmt.Errorf("%w: %w", ErrCipherNotFound, richErr)
	}
	return c, nil
}

// Names returns the registered cipher names and the names of the plugins held
// by the plugin manager, in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.ciphers))
	for name := range r.ciphers {
		names = append(names, name)
	}
	r.mu.RUnlock()

	if r.pluginManager != nil {
		for name := range r.pluginManager.ListPlugins() {
			if _, builtin := r.lookup(name); !builtin {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func (r *Registry) lookup(name string) (Cipher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.ciphers[name]
	return c, ok
}

// Process runs req and reports the outcome. It never panics on bad input:
// unknown ciphers, unsupported operations, invalid parameters and a context
// cancelled before work starts are all reported through CipherResponse.Error.
//
// A name that matches no registered cipher is forwarded to the plugin of the
// same name when the registry has a plugin manager. Registered ciphers always
// take precedence over plugins.
func (r *Registry) Process(ctx context.Context, req CipherRequest) CipherResponse {
	resp := CipherResponse{Cipher: req.Cipher}
	if err := r.process(ctx, req, &resp); err != nil {
		resp.Success = false
		resp.Text = ""
		resp.Candidates = nil
		resp.Error = err.Error()
	} else {
		resp.Success = true
	}
	resp.ProcessedAt = timecache.CachedTime().UTC()
	return resp
}

func (r *Registry) process(ctx context.Context, req CipherRequest, resp *CipherResponse) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c, err := r.Get(req.Cipher)
	if errors.Is(err, ErrCipherNotFound) && r.hasPlugin(req.Cipher) {
		return r.processPlugin(ctx, req, resp)
	}
	if err != nil {
		return err
	}
	resp.Cipher = c.Name()

	switch req.Operation {
	case OpEncrypt:
		resp.Text, err = c.Encrypt(req.Text, req.Params)
	case OpDecrypt:
		resp.Text, err = c.Decrypt(req.Text, req.Params)
	case OpEncryptAll, OpDecryptAll:
		e, ok := c.(Enumerator)
		if !ok {
			return unsupported(c.Name(), req.Operation)
		}
		if req.Operation == OpEncryptAll {
			resp.Candidates, err = e.EncryptAll(req.Text, req.Params)
		} else {
			resp.Candidates, err = e.DecryptAll(req.Text, req.Params)
		}
	default:
		richErr := goerrors.New(ErrCodeInvalidParam, fmt.Sprintf("unknown operation %q", req.Operation))
		return fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	return err
}

func (r *Registry) hasPlugin(name string) bool {
	if r.pluginManager == nil || name == "" {
		return false
	}
	_, err := r.pluginManager.GetPlugin(name)
	return err == nil
}

// processPlugin forwards req to the plugin registered under req.Cipher.
// A response with Success unset is reported as a failure.
func (r *Registry) processPlugin(ctx context.Context, req CipherRequest, resp *CipherResponse) error {
	out, err := r.pluginManager.Execute(ctx, req.Cipher, req)
	if err != nil {
		richErr := goerrors.Wrap(err, ErrCodePluginFailed, fmt.Sprintf("plugin %s failed", req.Cipher))
		return fmt.Errorf("%w: %w", ErrPluginFailed, richErr)
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "plugin reported failure"
		}
		richErr := goerrors.New(ErrCodePluginFailed, fmt.Sprintf("plugin %s: %s", req.Cipher, msg))
		return fmt.Errorf("%w: %w", ErrPluginFailed, richErr)
	}
	resp.Text = out.Text
	resp.Candidates = out.Candidates
	return nil
}
