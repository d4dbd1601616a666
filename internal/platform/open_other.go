//go:build !unix

package platform

import (
	"io/fs"
	"os"
)

// OpenRegular opens a regular file for reading. Symbolic links are rejected
// by an lstat before the open.
func OpenRegular(name string) (*os.File, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, err
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return nil, ErrNotRegular
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return checkRegular(f)
}
