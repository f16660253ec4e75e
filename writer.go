// Copyright 2018-2022 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"bytes"
	"errors"
	"io"

	"github.com/ulikunitz/huff/bitio"
	"github.com/ulikunitz/huff/internal/xlog"
)

// WriterConfig describes the parameters for a Writer.
type WriterConfig struct {
	// Debug receives diagnostic output about frequencies, code
	// assignments and tree serialization. A nil logger disables the
	// output and has no effect on the compressed stream.
	Debug xlog.Logger
}

// errWriterClosed indicates that the writer has already been closed.
var errWriterClosed = errors.New("huff: writer is closed")

// Writer compresses the data written to it into a huff stream. The code
// depends on the symbol frequencies of the complete input, so the data is
// buffered and the compressed stream is produced by Close. Close must be
// called; before it nothing is written to the underlying writer.
type Writer struct {
	cfg    WriterConfig
	w      io.Writer
	buf    bytes.Buffer
	closed bool
}

// NewWriter creates a new Writer compressing into w.
func NewWriter(w io.Writer) *Writer {
	return NewWriterConfig(w, WriterConfig{})
}

// NewWriterConfig creates a new Writer with the given configuration.
func NewWriterConfig(w io.Writer, cfg WriterConfig) *Writer {
	return &Writer{cfg: cfg, w: w}
}

// Write buffers p for compression by Close.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.closed {
		return 0, errWriterClosed
	}
	return w.buf.Write(p)
}

// Close compresses the buffered data and writes the complete stream,
// flushing a partial trailing byte with zero padding. It doesn't close the
// underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return errWriterClosed
	}
	w.closed = true
	br := bitio.NewReader(bytes.NewReader(w.buf.Bytes()))
	bw := bitio.NewWriter(w.w)
	if err := compress(br, bw, w.cfg.Debug); err != nil {
		bw.Close()
		return err
	}
	return bw.Close()
}

// compress writes a complete huff stream for the symbols provided by br.
// The symbols are read twice, once to count frequencies and once to encode,
// so the reader must support rewinding. The caller remains responsible for
// closing bw.
func compress(br *bitio.Reader, bw *bitio.Writer, debug xlog.Logger) error {
	f, err := countFrequencies(br, debug)
	if err != nil {
		return err
	}
	root := buildTree(f, debug)
	codes := buildCodes(root, debug)

	writeHeader(bw)
	writeTree(bw, root)

	if err = br.Reset(); err != nil {
		return err
	}
	for {
		v, err := br.ReadBits(bitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		writeCode(bw, codes[v])
	}
	writeCode(bw, codes[eosSymbol])
	return bw.Err()
}
