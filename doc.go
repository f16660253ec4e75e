// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package huff supports the compression and decompression of huff streams.
//
// A huff stream carries data compressed with a Huffman code computed from
// the byte frequencies of that data. The stream is self-contained: a 32-bit
// magic header is followed by a preorder encoding of the code tree, the
// variable-length codes of the input bytes in their original order, and the
// code of a reserved end-of-stream symbol. The final byte is padded with
// zero bits.
package huff
