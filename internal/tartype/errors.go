package tartype

import "errors"

// Sentinel errors for archive operations.
var (
	// ErrFormat matches every error caused by an entry that cannot be
	// encoded as a ustar header. Use errors.Is(err, ErrFormat).
	ErrFormat = errors.New("targen: entry cannot be encoded")

	// ErrUnsupportedType is returned for symlinks, devices, fifos and sockets.
	ErrUnsupportedType = errors.New("not a regular file or a directory")

	// ErrNameTooLong is returned when the encoded name exceeds 99 bytes.
	ErrNameTooLong = errors.New("name exceeds 99 bytes")

	// ErrPrefixTooLong is returned when the encoded prefix exceeds 154 bytes.
	ErrPrefixTooLong = errors.New("prefix exceeds 154 bytes")

	// ErrFieldOverflow is returned when size or mtime does not fit in 11 octal digits.
	ErrFieldOverflow = errors.New("value does not fit in octal header field")

	// ErrOutsideBase is returned when an entry is not located under the base path.
	ErrOutsideBase = errors.New("entry is not within base path")

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = errors.New("targen: size overflow")

	// ErrFileChanged is returned in strict mode when a file's content length
	// differs from the size recorded in its header.
	ErrFileChanged = errors.New("targen: file changed during archive creation")
)

// FormatError records an entry that cannot be encoded and the reason why.
type FormatError struct {
	Path string
	Err  error
}

// NewFormatError returns a FormatError for path caused by err.
func NewFormatError(path string, err error) *FormatError {
	return &FormatError{Path: path, Err: err}
}

func (e *FormatError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
