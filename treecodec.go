// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"io"

	"github.com/ulikunitz/huff/bitio"
)

// maxTreeDepth is the deepest level a leaf can occupy in a tree over the
// 257-symbol alphabet. Streams encoding deeper trees are malformed.
const maxTreeDepth = alphaSize

// writeTree serializes the tree in preorder. An internal node is a single 0
// bit followed by its two subtrees; a leaf is a 1 bit followed by the
// 9-bit symbol value. The encoding is self-delimiting.
func writeTree(bw *bitio.Writer, n *node) {
	if n.leaf() {
		bw.WriteBits(1, 1)
		bw.WriteBits(uint32(n.value), leafBits)
		return
	}
	bw.WriteBits(0, 1)
	writeTree(bw, n.left)
	writeTree(bw, n.right)
}

// readTree reconstructs a tree from its preorder encoding. It returns
// ErrMalformedTree if the encoding is truncated, a leaf value exceeds the
// alphabet or the tree is deeper than the alphabet permits; other errors of
// the bit reader are passed through.
func readTree(br *bitio.Reader) (root *node, err error) {
	return readSubtree(br, 0)
}

func readSubtree(br *bitio.Reader, depth int) (n *node, err error) {
	if depth > maxTreeDepth {
		return nil, ErrMalformedTree
	}
	b, err := br.ReadBit()
	if err != nil {
		return nil, treeError(err)
	}
	if b == 0 {
		left, err := readSubtree(br, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := readSubtree(br, depth+1)
		if err != nil {
			return nil, err
		}
		return &node{left: left, right: right}, nil
	}
	v, err := br.ReadBits(leafBits)
	if err != nil {
		return nil, treeError(err)
	}
	if v > eosSymbol {
		return nil, ErrMalformedTree
	}
	return &node{value: uint16(v)}, nil
}

// treeError maps an end of stream during tree reading to ErrMalformedTree.
func treeError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrMalformedTree
	}
	return err
}
