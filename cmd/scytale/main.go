// main.go: scytale command entry point
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

// Command scytale encrypts, decrypts and cracks text with classical ciphers.
package main

import "github.com/agilira/scytale/internal/cli"

func main() {
	cli.Execute()
}
