package targen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/ltskv/targen/internal/file"
	"github.com/ltskv/targen/internal/platform"
	"github.com/ltskv/targen/internal/tartype"
)

// errStopped unwinds the walk when the consumer stops iterating.
var errStopped = errors.New("iteration stopped")

// Generate returns the archive body for the tree rooted at path as a lazy
// sequence of blocks.
//
// Entries are visited depth-first in pre-order, children in lexical order.
// Every entry yields its header block; regular files then yield their
// content in chunks of 512*blockingFactor bytes, the last chunk zero-padded
// to a multiple of 512. base is only used to compute each header's prefix.
//
// The first error ends the sequence and is yielded with a nil block. Blocks
// already yielded are not retracted, so a consumer may see valid output
// before an error. Unencodable entries produce a *FormatError; I/O errors
// are passed through.
//
// Each yielded slice is only valid until the next iteration. At most one
// file is open at a time, and it is closed when the consumer stops early.
// No end-of-archive blocks are emitted; see Write.
func Generate(ctx context.Context, path, base string, opts ...Option) iter.Seq2[[]byte, error] {
	cfg := newConfig(opts)
	return func(yield func([]byte, error) bool) {
		g := &generator{
			cfg:   &cfg,
			base:  base,
			yield: yield,
			buf:   make([]byte, BlockSize*cfg.blockingFactor),
		}
		cfg.log().Info("generating archive", "path", path, "base", base, "blocking_factor", cfg.blockingFactor)
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
			return g.visit(ctx, p, d, walkErr)
		})
		if err != nil {
			if !errors.Is(err, errStopped) {
				cfg.log().Debug("archive generation failed", "path", path, "error", err)
				yield(nil, err)
			}
			return
		}
		cfg.log().Debug("archive body generated", "entries", g.entries, "bytes", g.bytes)
	}
}

// generator holds state for one pass over a tree.
type generator struct {
	cfg     *config
	base    string
	yield   func([]byte, error) bool
	buf     []byte
	bytes   uint64
	entries int
}

func (g *generator) emit(block []byte) error {
	if !g.yield(block, nil) {
		return errStopped
	}
	g.bytes += uint64(len(block))
	return nil
}

// visit emits the header and, for regular files, the data of one entry.
func (g *generator) visit(ctx context.Context, path string, d fs.DirEntry, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e, err := entryOf(path, d)
	if err != nil {
		return err
	}
	header, prefix, err := encodeHeader(e, g.base)
	if err != nil {
		return err
	}
	g.cfg.log().Debug("entry", "path", path, "kind", e.Kind.String(), "prefix", prefix, "size", e.Size)
	if err := g.emit(header); err != nil {
		return err
	}
	g.entries++

	if e.Kind == tartype.KindRegular {
		if err := g.emitData(e); err != nil {
			return err
		}
	}
	g.cfg.reportProgress(StageStreaming, path, g.bytes, 0, g.entries)
	return nil
}

// emitData streams the content of a regular file. The file is closed on
// every return path, including when the consumer stops mid-file.
func (g *generator) emitData(e tartype.Entry) error {
	f, err := platform.OpenRegular(e.Path)
	if err != nil {
		if errors.Is(err, platform.ErrNotRegular) {
			return tartype.NewFormatError(e.Path, tartype.ErrUnsupportedType)
		}
		return err
	}
	defer f.Close()

	br := file.NewBlockReader(f, g.buf, BlockSize)
	for {
		block, err := br.Next()
		if err != nil {
			return fmt.Errorf("read %s: %w", e.Path, err)
		}
		if block == nil {
			break
		}
		if err := g.emit(block); err != nil {
			return err
		}
	}

	if g.cfg.changeDetection == ChangeDetectionStrict && br.N != uint64(e.Size) { //nolint:gosec // size validated by header encoding
		return fmt.Errorf("%w: %s: expected %d bytes, read %d", tartype.ErrFileChanged, e.Path, e.Size, br.N)
	}
	return nil
}
