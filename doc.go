// Package targen produces ustar archives as a lazy stream of 512-byte blocks.
//
// A file or directory tree is walked depth-first in pre-order. Each entry
// contributes one header block; regular files follow it with their content,
// zero-padded to a multiple of 512 bytes. Nothing beyond the current read
// buffer is held in memory.
//
// # Quick Start
//
// Stream a directory to a writer:
//
//	desc, err := targen.Write(ctx, os.Stdout, "./src", ".")
//	if err != nil {
//	    return err
//	}
//	fmt.Fprintln(os.Stderr, desc.Digest)
//
// Consume the raw block sequence:
//
//	for block, err := range targen.Generate(ctx, "./src", ".") {
//	    if err != nil {
//	        return err
//	    }
//	    // block is only valid until the next iteration
//	}
//
// # Terminator
//
// [Generate] and [NewReader] emit the archive body only. The two zero blocks
// that end a tar archive are appended by [Write] unless [WithoutTerminator]
// is given. Consumers of the raw stream must append [Terminator] themselves
// to produce an archive that tar readers accept.
//
// # Limitations
//
// Only regular files and directories are supported; symlinks, devices,
// fifos and sockets fail with a [*FormatError]. Ownership and permission
// bits are fixed placeholders. Names are split from their directory prefix
// at the basename boundary, so a single path element longer than 99 bytes
// can never be archived. No PAX or GNU long-name extensions are written.
//
// Use [Check] before streaming to find unencodable entries up front, and
// [CalcSize] to learn the size of the stream for progress reporting.
package targen
