// Package file reads regular-file content as padded archive blocks and
// counts the bytes that pass through the archive pipeline.
package file

import (
	"errors"
	"io"

	"github.com/ltskv/targen/internal/sizing"
)

// ErrOverflow indicates a byte count exceeded its maximum value.
var ErrOverflow = errors.New("byte count overflow")

func addCount(total *uint64, n int) error {
	if n <= 0 {
		return nil
	}
	sum, ok := sizing.AddUint64(*total, uint64(n))
	if !ok {
		return ErrOverflow
	}
	*total = sum
	return nil
}

// BlockReader yields the content of one file in chunks of len(buf) bytes,
// the final chunk zero-padded to a multiple of the alignment. N counts the
// content bytes read, excluding padding.
type BlockReader struct {
	r     io.Reader
	buf   []byte
	align int
	done  bool

	N uint64
}

// NewBlockReader returns a BlockReader over r using buf as its chunk buffer.
func NewBlockReader(r io.Reader, buf []byte, align int) *BlockReader {
	return &BlockReader{r: r, buf: buf, align: align}
}

// Next returns the next chunk, or a nil chunk once the content is exhausted.
// The chunk is only valid until the following call.
func (br *BlockReader) Next() ([]byte, error) {
	if br.done {
		return nil, nil
	}
	block, more, err := ReadBlock(br, br.buf, br.align)
	if err != nil {
		br.done = true
		return nil, err
	}
	br.done = !more
	return block, nil
}

// Read implements io.Reader over the underlying content and counts it.
func (br *BlockReader) Read(p []byte) (int, error) {
	n, err := br.r.Read(p)
	if cerr := addCount(&br.N, n); cerr != nil {
		return n, cerr
	}
	return n, err
}

// CountingWriter counts the bytes accepted by W.
type CountingWriter struct {
	W io.Writer
	N uint64
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	n, err := cw.W.Write(p)
	if cerr := addCount(&cw.N, n); cerr != nil {
		return n, cerr
	}
	return n, err
}
