// pool.go: Buffer pooling for the text encoders
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package scytale

import (
	"sync"
	"unicode/utf8"
)

const (
	bufferInitialCap = 256
	bufferMaxCap     = 4 * 1024
)

// Pool of growable byte slices used to assemble encoder output - uses pointers to avoid allocations
var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, bufferInitialCap)
		return &buf
	},
}

func init() {
	// Pre-warm the pool to reduce first-access latency
	WarmupPools(4)
}

// getBuffer retrieves an empty buffer from the pool
func getBuffer() *[]byte {
	buf := bufferPool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

// putBuffer returns a buffer to the pool. Oversized buffers are dropped so a
// single huge message does not pin memory.
func putBuffer(buf *[]byte) {
	if buf == nil || cap(*buf) == 0 || cap(*buf) > bufferMaxCap {
		return
	}
	*buf = (*buf)[:0]
	bufferPool.Put(buf)
}

// trimLastRune drops the final rune of b when it equals r.
func trimLastRune(b []byte, r rune) []byte {
	last, size := utf8.DecodeLastRune(b)
	if size > 0 && last == r {
		return b[:len(b)-size]
	}
	return b
}

// WarmupPools pre allocates buffers in the pool to reduce cold latency
func WarmupPools(count int) {
	bufs := make([]*[]byte, count)
	for i := 0; i < count; i++ {
		bufs[i] = getBuffer()
	}
	for i := 0; i < count; i++ {
		putBuffer(bufs[i])
	}
}
