// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"bytes"
	"testing"

	"github.com/kr/pretty"
	"github.com/ulikunitz/huff/bitio"
)

// leafPath records the position of a leaf in the tree for comparisons.
type leafPath struct {
	Sym  int
	Path string
}

func leafPaths(n *node, path string, paths []leafPath) []leafPath {
	if n.leaf() {
		return append(paths, leafPath{Sym: int(n.value), Path: path})
	}
	paths = leafPaths(n.left, path+"0", paths)
	return leafPaths(n.right, path+"1", paths)
}

func sampleTree(t *testing.T) *node {
	t.Helper()
	f := new(frequencies)
	f[eosSymbol] = 1
	for i, c := range []int64{5, 9, 12, 13, 16, 45} {
		f['a'+i] = c
	}
	return buildTree(f, nil)
}

func encodeTree(t *testing.T, root *node) []byte {
	t.Helper()
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	writeTree(bw, root)
	if err := bw.Close(); err != nil {
		t.Fatalf("bw.Close() error %s", err)
	}
	return buf.Bytes()
}

func TestTreeRoundTrip(t *testing.T) {
	root := sampleTree(t)
	p := encodeTree(t, root)
	got, err := readTree(bitio.NewReader(bytes.NewReader(p)))
	if err != nil {
		t.Fatalf("readTree error %s", err)
	}
	want := leafPaths(root, "", nil)
	gotPaths := leafPaths(got, "", nil)
	if diff := pretty.Diff(want, gotPaths); len(diff) > 0 {
		t.Fatalf("reconstructed tree differs:\n%v", diff)
	}
}

func TestTreeRoundTripSingleLeaf(t *testing.T) {
	f := new(frequencies)
	f[eosSymbol] = 1
	root := buildTree(f, nil)
	p := encodeTree(t, root)
	got, err := readTree(bitio.NewReader(bytes.NewReader(p)))
	if err != nil {
		t.Fatalf("readTree error %s", err)
	}
	if !got.leaf() || got.value != eosSymbol {
		t.Fatalf("reconstructed tree is not the single end-of-stream"+
			" leaf: %# v", pretty.Formatter(got))
	}
}

func TestReadTreeTruncated(t *testing.T) {
	p := encodeTree(t, sampleTree(t))
	for n := 0; n < len(p); n++ {
		_, err := readTree(bitio.NewReader(bytes.NewReader(p[:n])))
		if err != ErrMalformedTree {
			t.Fatalf("readTree on %d of %d bytes returned error "+
				"%v; want ErrMalformedTree", n, len(p), err)
		}
	}
}

func TestReadTreeInvalidSymbol(t *testing.T) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	bw.WriteBit(1)
	bw.WriteBits(300, leafBits)
	if err := bw.Close(); err != nil {
		t.Fatalf("bw.Close() error %s", err)
	}
	_, err := readTree(bitio.NewReader(bytes.NewReader(buf.Bytes())))
	if err != ErrMalformedTree {
		t.Fatalf("readTree returned error %v; want ErrMalformedTree",
			err)
	}
}

func TestReadTreeTooDeep(t *testing.T) {
	// a long run of internal node markers descends deeper than any
	// tree over the alphabet can be
	p := bytes.Repeat([]byte{0}, 64)
	_, err := readTree(bitio.NewReader(bytes.NewReader(p)))
	if err != ErrMalformedTree {
		t.Fatalf("readTree returned error %v; want ErrMalformedTree",
			err)
	}
}
