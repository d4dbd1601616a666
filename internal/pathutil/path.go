// Package pathutil derives the ustar name and prefix fields from filesystem paths.
package pathutil

import (
	"path/filepath"
	"strings"

	"github.com/ltskv/targen/internal/tartype"
)

// Resolve splits entryPath into the header name and prefix relative to basePath.
//
// The name is the final path element. The prefix is empty when the entry's
// parent is basePath, or when the entry is basePath itself; otherwise it is
// the parent directory relative to basePath, slash-separated.
//
// This always splits at the directory/basename boundary rather than using
// the general ustar rule of splitting the full path near byte 155. A deep
// path with a short final element encodes fine; a final element longer than
// 99 bytes never does, however short the rest of the path is.
//
// Paths are compared lexically after filepath.Clean. An entry that is not
// under basePath yields a *tartype.FormatError wrapping tartype.ErrOutsideBase.
func Resolve(entryPath, basePath string) (name, prefix string, err error) {
	entryPath = filepath.Clean(entryPath)
	name = filepath.Base(entryPath)

	rel, err := filepath.Rel(filepath.Clean(basePath), entryPath)
	if err != nil || escapes(rel) {
		return "", "", tartype.NewFormatError(entryPath, tartype.ErrOutsideBase)
	}

	dir := filepath.Dir(rel)
	if dir == "." {
		return name, "", nil
	}
	return name, filepath.ToSlash(dir), nil
}

func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
