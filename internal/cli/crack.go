// crack.go: Key enumeration command
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/agilira/scytale"
	"github.com/agilira/scytale/internal/logger"
)

func newCrackCmd(a *app) *cobra.Command {
	f := &paramFlags{}
	var encrypt bool

	cmd := &cobra.Command{
		Use:   "crack <caesar|affine> [text...]",
		Short: "Try every key of a cipher and list the results",
		Example: `  scytale crack caesar "Khoor, Zruog!"
  scytale crack affine --alphabet abcdef Baainf --json`,
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
			input, err := inputText(cmd, args[1:])
			if err != nil {
				return err
			}

			op := scytale.OpDecryptAll
			if encrypt {
				op = scytale.OpEncryptAll
			}
			logger.L().Debug("cipher.run", "cipher", c.Name(), "operation", op, "input_len", len(input))

			resp := a.registry.Process(cmd.Context(), scytale.CipherRequest{
				Operation: op,
				Cipher:    c.Name(),
				Text:      input,
				Params:    p,
			})
			if !resp.Success {
				return errors.New(resp.Error)
			}
			if a.useJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), resp.Candidates)
			}
			return renderCandidates(cmd.OutOrStdout(), c.Name(), resp.Candidates)
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "enumerate encryptions instead of decryptions")
	return cmd
}

func renderCandidates(w io.Writer, cipher string, candidates []scytale.Candidate) error {
	table := tablewriter.NewWriter(w)
	if cipher == scytale.NameAffine {
		table.Header("A", "B", "Text")
	} else {
		table.Header("Key", "Text")
	}

	for _, c := range candidates {
		var row []string
		if cipher == scytale.NameAffine {
			row = []string{strconv.Itoa(c.A), strconv.Itoa(c.B), c.Text}
		} else {
			row = []string{strconv.Itoa(c.Key), c.Text}
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
