// Package platform inspects and opens filesystem entries without following
// symbolic links.
package platform

import (
	"errors"
	"os"

	"github.com/ltskv/targen/internal/tartype"
)

// ErrNotRegular is returned by OpenRegular when the path is a symbolic link
// or no longer a regular file.
var ErrNotRegular = errors.New("not a regular file")

// Stat returns the entry at path as seen by lstat.
func Stat(path string) (tartype.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return tartype.Entry{}, err
	}
	return tartype.EntryFromInfo(path, info), nil
}

// checkRegular closes f and returns ErrNotRegular unless f is a regular file.
func checkRegular(f *os.File) (*os.File, error) {
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, ErrNotRegular
	}
	return f, nil
}
