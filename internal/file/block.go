package file

import (
	"errors"
	"io"

	"github.com/ltskv/targen/internal/sizing"
)

// ReadBlock fills buf from r.
//
// A full buffer is returned unchanged with more set. A short non-empty read
// is zero-padded to the next multiple of align and returned with more unset.
// An empty read returns a nil block with more unset. len(buf) must be a
// multiple of align.
func ReadBlock(r io.Reader, buf []byte, align int) (block []byte, more bool, err error) {
	n, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return buf, true, nil
	case errors.Is(err, io.EOF):
		return nil, false, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		end := n + sizing.PadLen(n, align)
		clear(buf[n:end])
		return buf[:end], false, nil
	default:
		return nil, false, err
	}
}
