package targen

import (
	"context"
	"fmt"
	"io"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/ltskv/targen/internal/file"
)

// Write streams the archive for the tree rooted at path to w.
//
// Blocks from Generate are written verbatim, followed by the two zero
// end-of-archive blocks unless WithoutTerminator is given. The returned
// descriptor carries the OCI layer media type, the sha256 digest and the
// size of everything written.
//
// Any error aborts the write. Bytes already written to w are not rolled
// back; callers writing to a file should remove it on error.
func Write(ctx context.Context, w io.Writer, path, base string, opts ...Option) (ocispec.Descriptor, error) {
	cfg := newConfig(opts)
	digester := digest.Canonical.Digester()
	cw := &file.CountingWriter{W: io.MultiWriter(w, digester.Hash())}

	for block, err := range Generate(ctx, path, base, opts...) {
		if err != nil {
			return ocispec.Descriptor{}, err
		}
		if _, err := cw.Write(block); err != nil {
			return ocispec.Descriptor{}, fmt.Errorf("write archive: %w", err)
		}
	}

	if !cfg.noTerminator {
		cfg.reportProgress(StageTerminating, "", cw.N, 0, 0)
		if _, err := cw.Write(Terminator()); err != nil {
			return ocispec.Descriptor{}, fmt.Errorf("write terminator: %w", err)
		}
	}

	desc := ocispec.Descriptor{
		MediaType: ocispec.MediaTypeImageLayer,
		Digest:    digester.Digest(),
		Size:      int64(cw.N), //nolint:gosec // bounded by bytes actually written
	}
	cfg.log().Info("archive written", "path", path, "digest", desc.Digest.String(), "size", desc.Size)
	return desc, nil
}
