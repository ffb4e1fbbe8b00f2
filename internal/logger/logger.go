// Package logger holds the process-wide structured logger of the scytale CLI.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package logger

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// Config selects the logger installed by Setup.
type Config struct {
	Debug  bool
	Writer io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the global logger. Without Debug, or without a Writer,
// everything is discarded. The returned func restores the discard logger.
func Setup(cfg Config) func() {
	if !cfg.Debug || cfg.Writer == nil {
		setGlobal(discard())
		return func() {}
	}

	h := slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	setGlobal(slog.New(h))
	L().Debug("logger.initialized")

	return func() { setGlobal(discard()) }
}

// L returns the current global logger. It is never nil.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func setGlobal(l *slog.Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
