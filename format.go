package huff

import (
	"errors"
	"io"

	"github.com/ulikunitz/huff/bitio"
)

// Constants describing the symbol alphabet. The alphabet covers all byte
// values plus a reserved end-of-stream symbol, so a symbol requires nine
// bits when stored as a tree leaf.
const (
	bitsPerWord = 8
	bitsPerInt  = 32
	alphaSize   = 1 << bitsPerWord
	eosSymbol   = alphaSize
	leafBits    = bitsPerWord + 1
)

// huffNumber identifies the huff stream family. huffTree marks a stream
// whose header is followed by a preorder tree encoding.
const (
	huffNumber uint32 = 0xface8200
	huffTree          = huffNumber | 1
)

// Errors returned for streams that cannot be decoded. They are the only
// errors callers need to distinguish; all of them are fatal for the
// current operation.
var (
	// ErrHeader indicates that the stream doesn't start with the huff
	// magic number.
	ErrHeader = errors.New("huff: invalid header magic")
	// ErrMalformedTree indicates that the tree encoding is truncated or
	// inconsistent.
	ErrMalformedTree = errors.New("huff: malformed tree encoding")
	// ErrTruncated indicates that the payload ends before the
	// end-of-stream symbol has been decoded.
	ErrTruncated = errors.New("huff: stream ends before end-of-stream symbol")
)

// writeHeader writes the stream header into the bit writer.
func writeHeader(bw *bitio.Writer) {
	bw.WriteBits(huffTree, bitsPerInt)
}

// readHeader reads the stream header and verifies the magic number. A
// stream too short to contain a header is reported as a header error as
// well.
func readHeader(br *bitio.Reader) error {
	v, err := br.ReadBits(bitsPerInt)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrHeader
		}
		return err
	}
	if v != huffTree {
		return ErrHeader
	}
	return nil
}
