// Package blockio frames an input stream into fixed-size ciphertext blocks.
package blockio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrPartialBlock matches every *PartialBlockError
var ErrPartialBlock = errors.New("partial trailing block")

// PartialBlockError reports a stream that ended inside a block.
type PartialBlockError struct {
	Got  int
	Want int
}

func (e *PartialBlockError) Error() string {
	return fmt.Sprintf("%v: read %d of %d bytes", ErrPartialBlock, e.Got, e.Want)
}

// Is reports whether target is ErrPartialBlock
func (e *PartialBlockError) Is(target error) bool {
	return target == ErrPartialBlock
}

// BlockReader yields successive blocks of exactly size bytes from a stream.
// Reads are strictly sequential.
type BlockReader struct {
	r    *bufio.Reader
	size int
	buf  []byte
}

// NewBlockReader wraps r. size must be positive.
func NewBlockReader(r io.Reader, size int) (*BlockReader, error) {
	if r == nil {
		return nil, errors.New("reader cannot be nil")
	}
	if size <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", size)
	}

	bufSize := size
	if bufSize < 4096 {
		bufSize = 4096
	}

	return &BlockReader{
		r:    bufio.NewReaderSize(r, bufSize),
		size: size,
		buf:  make([]byte, size),
	}, nil
}

// Size returns the block length
func (b *BlockReader) Size() int {
	return b.size
}

// Next reads the next block. The returned slice is only valid until the next call.
//
// It returns io.EOF when the stream ends on a block boundary and a
// *PartialBlockError when it ends after 1 to Size()-1 bytes. Other read errors
// are returned unchanged.
func (b *BlockReader) Next() ([]byte, error) {
	n, err := io.ReadFull(b.r, b.buf)
	switch {
	case err == nil:
		return b.buf, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return nil, &PartialBlockError{Got: n, Want: b.size}
	default:
		return nil, err
	}
}
