// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"errors"
	"io"

	"github.com/ulikunitz/huff/bitio"
	"github.com/ulikunitz/huff/internal/xlog"
)

// ReaderConfig describes the parameters for a Reader.
type ReaderConfig struct {
	// Debug receives diagnostic output about the decoded tree and
	// symbols. A nil logger disables the output.
	Debug xlog.Logger
}

// Reader decompresses a huff stream.
type Reader struct {
	cfg  ReaderConfig
	br   *bitio.Reader
	root *node
	err  error
}

// NewReader creates a new Reader decompressing the stream r. The header and
// the tree encoding are read immediately; NewReader returns ErrHeader if
// the stream doesn't start with the huff magic number and ErrMalformedTree
// if the tree encoding cannot be decoded.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig creates a new Reader with the given configuration.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*Reader, error) {
	if r == nil {
		return nil, errors.New("huff: reader must be not nil")
	}
	br := bitio.NewReader(r)
	if err := readHeader(br); err != nil {
		return nil, err
	}
	root, err := readTree(br)
	if err != nil {
		return nil, err
	}
	// A tree consisting of a single leaf encodes only the end-of-stream
	// symbol with the empty code. Any other single-leaf tree would
	// decode symbols without consuming bits.
	if root.leaf() && root.value != eosSymbol {
		return nil, ErrMalformedTree
	}
	if cfg.Debug != nil {
		xlog.Printf(cfg.Debug, "tree with %d leaves read",
			countLeaves(root))
	}
	return &Reader{cfg: cfg, br: br, root: root}, nil
}

// countLeaves returns the number of leaves of the tree.
func countLeaves(n *node) int {
	if n.leaf() {
		return 1
	}
	return countLeaves(n.left) + countLeaves(n.right)
}

// Read decompresses data into p. After the end-of-stream symbol has been
// decoded Read returns io.EOF; remaining padding bits are ignored. If the
// stream ends before the end-of-stream symbol Read returns ErrTruncated.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	for n < len(p) {
		v, err := r.decodeSymbol()
		if err != nil {
			r.err = err
			return n, err
		}
		if v == eosSymbol {
			xlog.Print(r.cfg.Debug, "end-of-stream symbol decoded")
			r.err = io.EOF
			return n, io.EOF
		}
		p[n] = byte(v)
		n++
	}
	return n, nil
}

// decodeSymbol walks the tree from the root, descending left for a 0 bit
// and right for a 1 bit, until a leaf is reached. If the root is itself a
// leaf no bits are consumed.
func (r *Reader) decodeSymbol() (v uint16, err error) {
	n := r.root
	for !n.leaf() {
		b, err := r.br.ReadBit()
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, ErrTruncated
			}
			return 0, err
		}
		if b == 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value, nil
}
