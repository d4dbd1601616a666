//go:build unix

package platform

import (
	"errors"
	"os"
	"syscall"
)

// OpenRegular opens a regular file for reading. The final path element is
// never followed if it is a symbolic link, and the open does not block on a
// FIFO that replaced the file.
func OpenRegular(name string) (*os.File, error) {
	f, err := os.OpenFile(name, os.O_RDONLY|syscall.O_NOFOLLOW|syscall.O_NONBLOCK, 0)
	if err != nil {
		if errors.Is(err, syscall.ELOOP) {
			return nil, ErrNotRegular
		}
		return nil, err
	}
	return checkRegular(f)
}
