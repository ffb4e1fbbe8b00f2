// Package cli implements the scytale command tree.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agilira/scytale"
	"github.com/agilira/scytale/internal/config"
	"github.com/agilira/scytale/internal/logger"
)

var version = "0.1.0"

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	debug      bool
	jsonOut    bool

	cfg      config.FileConfig
	registry *scytale.Registry
	cleanup  func()
}

// Execute runs the command tree and exits with status 1 on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{registry: scytale.NewRegistry(nil, nil)}

	cmd := &cobra.Command{
		Use:           "scytale",
		Short:         "Classical ciphers: Caesar, Atbash, Affine, A1Z26, Morse",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.cleanup = logger.Setup(logger.Config{Debug: a.debug, Writer: cmd.ErrOrStderr()})
			return a.loadConfig()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.cleanup != nil {
				a.cleanup()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file (default: .scytale.yml in the working directory)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable JSON debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "emit JSON")

	cmd.AddCommand(
		newTransformCmd(a, scytale.OpEncrypt),
		newTransformCmd(a, scytale.OpDecrypt),
		newCrackCmd(a),
		newListCmd(a),
		newConfigCmd(a),
	)
	return cmd
}

func (a *app) loadConfig() error {
	if a.configPath != "" {
		cfg, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		logger.L().Debug("config.loaded", "path", a.configPath)
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil
	}
	cfg, path, err := config.LoadLocal(wd)
	switch {
	case errors.Is(err, config.ErrNoConfig):
		return nil
	case err != nil:
		return err
	}
	a.cfg = cfg
	logger.L().Debug("config.loaded", "path", path)
	return nil
}

// useJSON reports whether output should be JSON, from the flag or the config file.
func (a *app) useJSON(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("json") {
		return a.jsonOut
	}
	if a.cfg.Format != nil {
		return *a.cfg.Format == "json"
	}
	return a.jsonOut
}
