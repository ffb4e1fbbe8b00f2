// configcmd.go: config init command
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agilira/scytale/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}

	var (
		output    string
		force     bool
		alphabet  string
		separator string
		key       int
		format    string
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .scytale.yml with default cipher options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.FileConfig
			if cmd.Flags().Changed("alphabet") {
				cfg.Alphabet = &alphabet
			}
			if cmd.Flags().Changed("separator") {
				cfg.Separator = &separator
			}
			if cmd.Flags().Changed("key") {
				cfg.Key = &key
			}
			cfg.Format = &format
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Write(output, cfg, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return err
		},
	}

	initCmd.Flags().StringVar(&output, "output", ".scytale.yml", "output file path")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&alphabet, "alphabet", "", "default alphabet")
	initCmd.Flags().StringVar(&separator, "separator", " ", "default a1z26 separator")
	initCmd.Flags().IntVar(&key, "key", 0, "default shift key")
	initCmd.Flags().StringVar(&format, "format", "text", "default output format: text | json")

	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}
