// transform.go: encrypt and decrypt commands
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agilira/scytale"
	"github.com/agilira/scytale/internal/logger"
)

// newTransformCmd builds the encrypt or decrypt command.
func newTransformCmd(a *app, op string) *cobra.Command {
	f := &paramFlags{}

	cmd := &cobra.Command{
		Use:   op + " <cipher> [text...]",
		Short: op + " text with a cipher (reads stdin when no text is given)",
		Example: fmt.Sprintf(`  scytale %[1]s caesar --key 3 "Hello, World!"
  scytale %[1]s affine -a 5 -b 8 Hello
  cat notes.txt | scytale %[1]s atbash`, op),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.registry.Get(args[0])
			if err != nil {
				return err
			}
			p, err := a.resolve(cmd, c.Name(), f)
			if err != nil {
				return err
			}
			text := args[1:]

			// Substitution ciphers stream stdin straight through.
			if len(text) == 0 && !a.useJSON(cmd) {
				streamed, err := stream(cmd, c, p, op == scytale.OpDecrypt)
				if streamed || err != nil {
					return err
				}
			}

			input, err := inputText(cmd, text)
			if err != nil {
				return err
			}
			logger.L().Debug("cipher.run", "cipher", c.Name(), "operation", op, "input_len", len(input))

			resp := a.registry.Process(cmd.Context(), scytale.CipherRequest{
				Operation: op,
				Cipher:    c.Name(),
				Text:      input,
				Params:    p,
			})
			if a.useJSON(cmd) {
				if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
					return err
				}
			}
			if !resp.Success {
				return errors.New(resp.Error)
			}
			if !a.useJSON(cmd) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
			}
			return err
		},
	}
	f.register(cmd)
	return cmd
}

// stream copies stdin to stdout through the cipher's transformer. It reports
// false without error when the cipher cannot stream.
func stream(cmd *cobra.Command, c scytale.Cipher, p scytale.Params, decrypt bool) (bool, error) {
	t, err := scytale.StreamTransformer(c, p, decrypt)
	if errors.Is(err, scytale.ErrUnsupportedOperation) {
		return false, nil
	}
	if err != nil {
		return true, err
	}

	r, err := scytale.NewStreamingReader(cmd.InOrStdin(), t)
	if err != nil {
		return true, err
	}
	n, err := io.Copy(cmd.OutOrStdout(), r)
	logger.L().Debug("cipher.stream", "cipher", c.Name(), "decrypt", decrypt, "bytes", n)
	return true, err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
