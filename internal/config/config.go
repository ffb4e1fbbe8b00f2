// Package config loads the optional YAML defaults file of the scytale CLI.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/agilira/scytale"
)

// FileNames are the names LoadLocal looks for, in order.
var FileNames = []string{".scytale.yml", ".scytale.yaml", "scytale.yml", "scytale.yaml"}

// ErrNoConfig is returned by LoadLocal when no config file exists.
var ErrNoConfig = errors.New("no local config")

// FileConfig is the on-disk YAML configuration shape. Nil fields are unset
// and leave the library default (or the command-line flag) in charge.
type FileConfig struct {
	Alphabet  *string            `yaml:"alphabet,omitempty"`
	Separator *string            `yaml:"separator,omitempty"`
	Key       *int               `yaml:"key,omitempty"`
	Format    *string            `yaml:"format,omitempty"` // text | json
	KDF       *scytale.KDFParams `yaml:"kdf,omitempty"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path) // #nosec G304 -- path chosen by the user
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches dir for one of FileNames.
func LoadLocal(dir string) (FileConfig, string, error) {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			cfg, err := LoadFile(p)
			return cfg, p, err
		}
	}
	return FileConfig{}, "", ErrNoConfig
}

// Validate checks the values that can be checked without knowing the cipher.
func (c FileConfig) Validate() error {
	if c.Alphabet != nil {
		if err := scytale.ValidateAlphabet(*c.Alphabet); err != nil {
			return err
		}
	}
	if c.Separator != nil && utf8.RuneCountInString(*c.Separator) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", *c.Separator)
	}
	if c.Format != nil && *c.Format != "text" && *c.Format != "json" {
		return fmt.Errorf("format must be text or json, got %q", *c.Format)
	}
	return nil
}

// Write marshals cfg to path, refusing to replace an existing file unless force is set.
func Write(path string, cfg FileConfig, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
