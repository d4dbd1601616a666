package targen

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/ltskv/targen/internal/sizing"
	"github.com/ltskv/targen/internal/tartype"
)

// CalcSize returns the number of bytes Generate yields for the tree rooted at path.
//
// A regular file accounts for one header block plus its size rounded up to
// 512; a directory for one header block plus the size of its children. The
// end-of-archive blocks are not included; add TerminatorSize for the output
// of Write.
//
// Names and prefixes are not checked, only entry types: any entry that is
// not a regular file or a directory fails with a *FormatError.
func CalcSize(ctx context.Context, path string, opts ...Option) (uint64, error) {
	cfg := newConfig(opts)
	var total uint64
	var entries int
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		e, err := entryOf(p, d)
		if err != nil {
			return err
		}
		n, err := entrySize(e)
		if err != nil {
			return err
		}
		sum, ok := sizing.AddUint64(total, n)
		if !ok {
			return ErrSizeOverflow
		}
		total = sum
		entries++
		cfg.reportProgress(StageSizing, p, total, 0, entries)
		return nil
	})
	if err != nil {
		return 0, err
	}
	cfg.log().Debug("archive size calculated", "path", path, "entries", entries, "bytes", total)
	return total, nil
}

// entrySize is the stream size of a single entry, excluding any children.
func entrySize(e tartype.Entry) (uint64, error) {
	switch e.Kind {
	case tartype.KindDir:
		return BlockSize, nil
	case tartype.KindRegular:
		if e.Size < 0 {
			return 0, ErrSizeOverflow
		}
		data, ok := sizing.RoundUp(uint64(e.Size), BlockSize)
		if !ok {
			return 0, ErrSizeOverflow
		}
		n, ok := sizing.AddUint64(data, BlockSize)
		if !ok {
			return 0, ErrSizeOverflow
		}
		return n, nil
	default:
		return 0, tartype.NewFormatError(e.Path, tartype.ErrUnsupportedType)
	}
}
