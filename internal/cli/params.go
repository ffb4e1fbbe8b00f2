// params.go: Flag and config resolution for cipher parameters
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/agilira/scytale"
)

// paramFlags mirrors scytale.Params on the command line.
type paramFlags struct {
	alphabet   string
	key        int
	a          int
	b          int
	separator  string
	passphrase string
	salt       string
}

func (f *paramFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.alphabet, "alphabet", "", "ordered substitution alphabet (default depends on the cipher)")
	fs.IntVarP(&f.key, "key", "k", 0, "shift amount for caesar and a1z26")
	fs.IntVarP(&f.a, "coef-a", "a", 0, "affine multiplicative coefficient, coprime with the alphabet length")
	fs.IntVarP(&f.b, "coef-b", "b", 0, "affine additive offset")
	fs.StringVar(&f.separator, "separator", "", "a1z26 token separator (default: space)")
	fs.StringVar(&f.passphrase, "passphrase", "", "derive the key (caesar, a1z26) or a/b (affine) from a passphrase")
	fs.StringVar(&f.salt, "salt", "", "salt for --passphrase, at least 8 bytes")
}

// resolve merges flags, the config file and library defaults, in that order of precedence.
func (a *app) resolve(cmd *cobra.Command, cipher string, f *paramFlags) (scytale.Params, error) {
	var p scytale.Params
	fs := cmd.Flags()

	switch {
	case fs.Changed("alphabet"):
		p.Alphabet = f.alphabet
	case a.cfg.Alphabet != nil:
		p.Alphabet = *a.cfg.Alphabet
	}
	if p.Alphabet != "" {
		if err := scytale.ValidateAlphabet(p.Alphabet); err != nil {
			return p, err
		}
	}

	switch {
	case fs.Changed("key"):
		p.Key = f.key
	case a.cfg.Key != nil:
		p.Key = *a.cfg.Key
	}

	sep := ""
	switch {
	case fs.Changed("separator"):
		sep = f.separator
	case a.cfg.Separator != nil:
		sep = *a.cfg.Separator
	}
	if sep != "" {
		r, size := utf8.DecodeRuneInString(sep)
		if size != len(sep) {
			return p, fmt.Errorf("separator must be a single character, got %q", sep)
		}
		p.Separator = r
	}

	p.A, p.B = f.a, f.b

	if f.passphrase != "" {
		if err := a.derive(cipher, f, &p); err != nil {
			return p, err
		}
	}
	return p, nil
}

// derive replaces the key material in p with values derived from the passphrase.
func (a *app) derive(cipher string, f *paramFlags, p *scytale.Params) error {
	n := utf8.RuneCountInString(p.Alphabet)
	if n == 0 {
		n = utf8.RuneCountInString(scytale.DefaultAlphabet)
	}

	switch cipher {
	case scytale.NameCaesar, scytale.NameA1Z26:
		key, err := scytale.DeriveShift([]byte(f.passphrase), []byte(f.salt), n, a.cfg.KDF)
		if err != nil {
			return err
		}
		p.Key = key
	case scytale.NameAffine:
		k, err := scytale.DeriveAffineKey([]byte(f.passphrase), []byte(f.salt), n, a.cfg.KDF)
		if err != nil {
			return err
		}
		p.A, p.B = k.A, k.B
	default:
		return fmt.Errorf("cipher %s has no key to derive from --passphrase", cipher)
	}
	return nil
}

// inputText joins the positional text arguments, or reads all of stdin when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
