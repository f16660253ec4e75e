// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitio

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// bwriter implements a ByteWriter on top of a Writer.
type bwriter struct {
	w   io.Writer
	buf []byte
}

// WriteByte writes a single byte to the underlying writer.
func (bw *bwriter) WriteByte(c byte) error {
	bw.buf[0] = c
	_, err := bw.w.Write(bw.buf)
	return err
}

// byteWriter converts a writer into a ByteWriter.
func byteWriter(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return &bwriter{w, make([]byte, 1)}
}

// Writer accumulates bits into bytes and writes completed bytes to the
// underlying byte stream. The first bit written becomes the high bit of the
// first byte. Write errors are sticky; they are reported by Err and Close
// and all writes after the first error are ignored.
type Writer struct {
	bw    io.ByteWriter
	err   error
	cache uint64
	nbits int
}

// NewWriter creates a new bit writer on top of the byte stream w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: byteWriter(w)}
}

// WriteBits writes the low n bits of v; n must be in the range [0,32].
func (w *Writer) WriteBits(v uint32, n int) {
	assert.Assertf(0 <= n && n <= 32, "bitio: bit count %d out of range [0,32]", n)
	if w.err != nil {
		return
	}
	w.cache = w.cache<<uint(n) | uint64(v)&(1<<uint(n)-1)
	w.nbits += n
	for w.nbits >= 8 {
		w.nbits -= 8
		if err := w.bw.WriteByte(byte(w.cache >> uint(w.nbits))); err != nil {
			w.err = err
			return
		}
	}
}

// WriteBit writes a single bit.
func (w *Writer) WriteBit(b uint8) {
	w.WriteBits(uint32(b), 1)
}

// Err returns the first error observed while writing.
func (w *Writer) Err() error {
	return w.err
}

// Close flushes an incomplete trailing byte with zero bits in the low
// positions and returns the first write error, if any. The underlying byte
// stream is not closed.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.nbits > 0 {
		c := byte(w.cache << uint(8-w.nbits))
		w.nbits = 0
		if err := w.bw.WriteByte(c); err != nil {
			w.err = err
		}
	}
	return w.err
}
