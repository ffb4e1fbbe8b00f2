// streaming.go: Streaming substitution for large inputs.
//
// Per-character ciphers (Caesar, Atbash, Affine) never look at more than one
// rune at a time, so they can be applied to readers and writers of any size
// without buffering the whole text. The transforms are built on
// golang.org/x/text/transform, which takes care of runes split across
// Write or Read boundaries.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"fmt"
	"io"

	goerrors "github.com/agilira/go-errors"
	"golang.org/x/text/transform"
)

// NewStreamingWriter returns a writer that transforms everything written to it
// with t before passing it on to w.
//
// Close must be called to flush a trailing partial rune.
//
// Example:
//
//	w, _ := scytale.NewStreamingWriter(os.Stdout, scytale.Caesar{}.EncryptTransformer(3))
//	defer w.Close()
//
//	io.Copy(w, input) // Encrypts while streaming
func NewStreamingWriter(w io.Writer, t transform.Transformer) (io.WriteCloser, error) {
	if w == nil {
		richErr := goerrors.New(ErrCodeInvalidParam, "writer cannot be nil")
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	if t == nil {
		richErr := goerrors.New(ErrCodeInvalidParam, "transformer cannot be nil")
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	return transform.NewWriter(w, t), nil
}

// NewStreamingReader returns a reader that yields the contents of r transformed by t.
//
// Example:
//
//	t, err := scytale.Affine{}.DecryptTransformer(5, 8)
//	if err != nil {
//		log.Fatal(err)
//	}
//	rd, _ := scytale.NewStreamingReader(input, t)
//	io.Copy(os.Stdout, rd) // Decrypts while streaming
func NewStreamingReader(r io.Reader, t transform.Transformer) (io.Reader, error) {
	if r == nil {
		richErr := goerrors.New(ErrCodeInvalidParam, "reader cannot be nil")
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	if t == nil {
		richErr := goerrors.New(ErrCodeInvalidParam, "transformer cannot be nil")
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, richErr)
	}
	return transform.NewReader(r, t), nil
}

// StreamTransformer resolves the streaming transformer of a cipher.
//
// It fails with ErrUnsupportedOperation when c does not implement Streamer
// (A1Z26 and Morse produce output that depends on token boundaries), and with
// the cipher's own validation error for bad parameters.
func StreamTransformer(c Cipher, p Params, decrypt bool) (transform.Transformer, error) {
	s, ok := c.(Streamer)
	if !ok {
		return nil, unsupported(c.Name(), "streaming")
	}
	if decrypt {
		return s.DecryptTransformer(p)
	}
	return s.EncryptTransformer(p)
}
