// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"container/heap"
	"io"

	"github.com/ulikunitz/huff/bitio"
	"github.com/ulikunitz/huff/internal/xlog"
)

// frequencies stores the number of occurrences for each symbol of the
// alphabet. The count for the end-of-stream symbol is always one.
type frequencies [alphaSize + 1]int64

// countFrequencies reads 8-bit symbols from the bit reader until the end of
// the stream and counts their occurrences. The end-of-stream symbol is
// counted exactly once regardless of the input, so it always receives a
// leaf in the tree, even for empty input.
func countFrequencies(br *bitio.Reader, debug xlog.Logger) (f *frequencies, err error) {
	f = new(frequencies)
	f[eosSymbol] = 1
	for {
		v, err := br.ReadBits(bitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		f[v]++
	}
	if debug != nil {
		for v, c := range f {
			if c != 0 {
				xlog.Printf(debug, "freq %d: %d", v, c)
			}
		}
	}
	return f, nil
}

// node is a node of the code tree. A leaf has no children and carries a
// symbol value; an internal node owns exactly two children and its weight
// is the sum of the children's weights. The weight and sequence number are
// only used during construction.
type node struct {
	left, right *node
	weight      int64
	value       uint16
	seq         int
}

// leaf reports whether n is a leaf node. Internal nodes always have two
// children.
func (n *node) leaf() bool { return n.left == nil }

// nodeHeap is a min-heap over tree nodes ordered by weight. Nodes of equal
// weight are ordered by their sequence number, which makes extraction
// first-in-first-out among ties and the heap a stable priority queue.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// buildTree constructs the Huffman tree for the frequency table and returns
// its root. Leaves are created in ascending symbol order and the two
// lightest nodes are merged repeatedly until one node remains. Because the
// end-of-stream symbol always has a nonzero count the heap is never empty;
// for empty input the root is the single leaf of that symbol.
func buildTree(f *frequencies, debug xlog.Logger) *node {
	h := make(nodeHeap, 0, len(f))
	seq := 0
	for v, c := range f {
		if c > 0 {
			h = append(h, &node{weight: c, value: uint16(v), seq: seq})
			seq++
		}
	}
	heap.Init(&h)
	xlog.Printf(debug, "tree construction with %d leaves", len(h))
	for len(h) > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		t := &node{
			left:   left,
			right:  right,
			weight: left.weight + right.weight,
			seq:    seq,
		}
		seq++
		heap.Push(&h, t)
	}
	return heap.Pop(&h).(*node)
}
