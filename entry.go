package targen

import (
	"io/fs"

	"github.com/ltskv/targen/internal/pathutil"
	"github.com/ltskv/targen/internal/tartype"
	"github.com/ltskv/targen/internal/ustar"
)

// BlockSize is the archive alignment unit.
const BlockSize = ustar.BlockSize

// TerminatorSize is the length of the end-of-archive marker appended by Write.
const TerminatorSize = 2 * BlockSize

// Terminator returns the two zero blocks that end a tar archive.
func Terminator() []byte {
	return ustar.Terminator()
}

// entryOf builds the entry for a walked path without following symlinks.
func entryOf(path string, d fs.DirEntry) (tartype.Entry, error) {
	info, err := d.Info()
	if err != nil {
		return tartype.Entry{}, err
	}
	return tartype.EntryFromInfo(path, info), nil
}

// encodeHeader resolves the name and prefix of e against base and builds its header.
func encodeHeader(e tartype.Entry, base string) (header []byte, prefix string, err error) {
	name, prefix, err := pathutil.Resolve(e.Path, base)
	if err != nil {
		return nil, "", err
	}
	e.Name = name
	header, err = ustar.Build(e, prefix)
	if err != nil {
		return nil, "", err
	}
	return header, prefix, nil
}
