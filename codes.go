// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"github.com/ulikunitz/huff/bitio"
	"github.com/ulikunitz/huff/internal/xlog"
)

// code is the bit sequence assigned to a symbol. The bits are packed into p
// starting at the most significant bit of p[0]. A bit vector is used
// instead of an integer because skewed weight distributions can produce
// codes longer than 64 bits.
type code struct {
	nbits int
	p     []byte
}

// String returns the code as a sequence of '0' and '1' characters.
func (c code) String() string {
	s := make([]byte, c.nbits)
	for i := range s {
		s[i] = '0' + c.p[i>>3]>>uint(7-i&7)&1
	}
	return string(s)
}

// packCode converts a path of single bits into a packed code.
func packCode(path []byte) code {
	c := code{nbits: len(path), p: make([]byte, (len(path)+7)/8)}
	for i, b := range path {
		if b != 0 {
			c.p[i>>3] |= 0x80 >> uint(i&7)
		}
	}
	return c
}

// codeTable maps each symbol of the alphabet to its code. Symbols without a
// tree leaf keep the zero code with nbits 0.
type codeTable [alphaSize + 1]code

// buildCodes derives the code table from the tree by a preorder walk,
// appending a 0 bit for each left and a 1 bit for each right descent. If
// the root is itself a leaf its symbol receives the empty code.
func buildCodes(root *node, debug xlog.Logger) *codeTable {
	t := new(codeTable)
	walkCodes(t, root, nil, debug)
	return t
}

func walkCodes(t *codeTable, n *node, path []byte, debug xlog.Logger) {
	if n.leaf() {
		t[n.value] = packCode(path)
		xlog.Printf(debug, "code %d: %s", n.value, t[n.value])
		return
	}
	walkCodes(t, n.left, append(path, 0), debug)
	walkCodes(t, n.right, append(path, 1), debug)
}

// writeCode writes the code bits in root-to-leaf order into the bit writer.
func writeCode(bw *bitio.Writer, c code) {
	n := c.nbits
	for i := 0; n > 0; i++ {
		if n >= 8 {
			bw.WriteBits(uint32(c.p[i]), 8)
			n -= 8
		} else {
			bw.WriteBits(uint32(c.p[i])>>uint(8-n), n)
			n = 0
		}
	}
}
