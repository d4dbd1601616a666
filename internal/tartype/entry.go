// Package tartype holds the entry model, errors and progress types shared
// by the archive packages.
package tartype

import (
	"io/fs"
	"time"
)

// Kind classifies a filesystem entry for archiving.
type Kind uint8

const (
	// KindOther covers symlinks, devices, fifos and sockets. Never encodable.
	KindOther Kind = iota

	// KindRegular is a regular file.
	KindRegular

	// KindDir is a directory.
	KindDir
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "file"
	case KindDir:
		return "directory"
	default:
		return "other"
	}
}

// KindOf classifies a file mode. Symlinks are KindOther even when they
// point at a file or directory.
func KindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindRegular
	case mode.IsDir():
		return KindDir
	default:
		return KindOther
	}
}

// Entry is a filesystem node observed at traversal time.
type Entry struct {
	// Path is the filesystem path used to reach the entry.
	Path string

	// Name is the final path element.
	Name string

	// Kind classifies the entry.
	Kind Kind

	// Size is the content length in bytes. Only meaningful for regular files.
	Size int64

	// ModTime is the modification time. Only whole seconds are archived.
	ModTime time.Time
}

// EntryFromInfo builds an Entry from lstat-style file info.
func EntryFromInfo(path string, info fs.FileInfo) Entry {
	e := Entry{
		Path:    path,
		Name:    info.Name(),
		Kind:    KindOf(info.Mode()),
		ModTime: info.ModTime(),
	}
	if e.Kind == KindRegular {
		e.Size = info.Size()
	}
	return e
}
