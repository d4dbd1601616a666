package targen

import "github.com/ltskv/targen/internal/tartype"

// FormatError records an entry that cannot be encoded as a ustar header.
type FormatError = tartype.FormatError

// Errors re-exported from tartype.
var (
	// ErrFormat matches every *FormatError via errors.Is.
	ErrFormat = tartype.ErrFormat

	// ErrUnsupportedType is returned for entries that are neither regular files nor directories.
	ErrUnsupportedType = tartype.ErrUnsupportedType

	// ErrNameTooLong is returned when an entry name exceeds 99 bytes.
	ErrNameTooLong = tartype.ErrNameTooLong

	// ErrPrefixTooLong is returned when an entry prefix exceeds 154 bytes.
	ErrPrefixTooLong = tartype.ErrPrefixTooLong

	// ErrFieldOverflow is returned when a size or mtime does not fit its header field.
	ErrFieldOverflow = tartype.ErrFieldOverflow

	// ErrOutsideBase is returned when an entry is not located under the base path.
	ErrOutsideBase = tartype.ErrOutsideBase

	// ErrSizeOverflow is returned when a byte count exceeds supported limits.
	ErrSizeOverflow = tartype.ErrSizeOverflow

	// ErrFileChanged is returned with ChangeDetectionStrict when a file's
	// length differs from the size recorded in its header.
	ErrFileChanged = tartype.ErrFileChanged
)
