package targen

import (
	"context"
	"io"
	"io/fs"
	"iter"
)

// Reader adapts the block sequence of Generate to io.Reader.
//
// It produces the archive body only, without end-of-archive blocks. Close
// releases any open file when reading stops before EOF.
type Reader struct {
	next    func() ([]byte, error, bool)
	stop    func()
	pending []byte
	err     error
}

// NewReader returns a Reader over Generate(ctx, path, base, opts...).
// Nothing is read from disk until the first call to Read.
func NewReader(ctx context.Context, path, base string, opts ...Option) *Reader {
	next, stop := iter.Pull2(Generate(ctx, path, base, opts...))
	return &Reader{next: next, stop: stop}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		block, err, ok := r.next()
		switch {
		case !ok:
			r.err = io.EOF
		case err != nil:
			r.err = err
			r.stop()
		default:
			r.pending = block
		}
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// Close stops the underlying sequence. Subsequent reads return fs.ErrClosed.
func (r *Reader) Close() error {
	r.stop()
	r.pending = nil
	r.err = fs.ErrClosed
	return nil
}
