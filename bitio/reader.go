// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitio

import (
	"errors"
	"io"

	"github.com/chronos-tachyon/assert"
)

// errNoSeeker indicates that the underlying reader cannot be rewound.
var errNoSeeker = errors.New("bitio: reader doesn't support rewinding")

// breader converts a reader into a byte reader.
type breader struct {
	io.Reader
	// helper slice
	p []byte
}

// ReadByte reads a single byte from the underlying reader.
func (r *breader) ReadByte() (c byte, err error) {
	n, err := r.Reader.Read(r.p)
	if n < 1 {
		if err == nil {
			err = errors.New("bitio: no data")
		}
		return 0, err
	}
	return r.p[0], nil
}

// byteReader converts a reader into a ByteReader.
func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &breader{r, make([]byte, 1)}
}

// Reader reads a byte stream as a sequence of bits. The high bit of each
// byte is the first bit of that byte.
type Reader struct {
	src   io.Reader
	br    io.ByteReader
	cache uint64
	nbits int
}

// NewReader creates a new bit reader for the byte stream r.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: r, br: byteReader(r)}
}

// ReadBits reads the next n bits and returns them as the low bits of an
// unsigned value; n must be in the range [0,32]. At the end of the stream
// ReadBits returns io.EOF. If the stream ends after some but not all of the
// requested bits it returns io.ErrUnexpectedEOF.
func (r *Reader) ReadBits(n int) (v uint32, err error) {
	assert.Assertf(0 <= n && n <= 32, "bitio: bit count %d out of range [0,32]", n)
	for r.nbits < n {
		c, err := r.br.ReadByte()
		if err != nil {
			if err == io.EOF && r.nbits > 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		r.cache = r.cache<<8 | uint64(c)
		r.nbits += 8
	}
	r.nbits -= n
	v = uint32(r.cache >> uint(r.nbits) & (1<<uint(n) - 1))
	return v, nil
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (b uint8, err error) {
	v, err := r.ReadBits(1)
	return uint8(v), err
}

// Reset rewinds the reader to the start of the stream. It fails if the
// underlying reader is not an io.Seeker.
func (r *Reader) Reset() error {
	s, ok := r.src.(io.Seeker)
	if !ok {
		return errNoSeeker
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.cache, r.nbits = 0, 0
	return nil
}
