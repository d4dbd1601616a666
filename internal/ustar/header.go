// Package ustar encodes the fixed 512-byte ustar header block.
//
// Only the subset needed to archive regular files and directories is
// implemented. Ownership and permission bits are fixed placeholders, link
// names, user/group names and device numbers are always zero.
package ustar

import (
	"fmt"
	"strconv"

	"github.com/ltskv/targen/internal/tartype"
)

// BlockSize is the size of a header block and the data alignment unit.
const BlockSize = 512

// Field capacities. The fields are NUL-terminated so one byte is reserved.
const (
	MaxNameLen   = 99
	MaxPrefixLen = 154
)

// maxOctal is the largest value representable in 11 octal digits.
const maxOctal = 1<<33 - 1

// Typeflag values.
const (
	TypeReg = '0'
	TypeDir = '5'
)

// Field layout as (offset, length).
const (
	offName     = 0
	lenName     = 100
	offMode     = 100
	offUID      = 108
	offGID      = 116
	lenID       = 8
	offSize     = 124
	offMtime    = 136
	lenNumeric  = 12
	offChksum   = 148
	lenChksum   = 8
	offTypeflag = 156
	offMagic    = 257
	offVersion  = 263
	offPrefix   = 345
	lenPrefix   = 155
)

const (
	modeDir  = "000755 \x00"
	modeFile = "000644 \x00"
	ownerID  = "000777 \x00"
	magic    = "ustar\x00"
	version  = "00"
)

// Build encodes the header block for e with the given prefix.
//
// It returns a *tartype.FormatError if the entry is not a regular file or a
// directory, if the name or prefix does not fit its field, or if the size or
// modification time cannot be written as 11 octal digits.
func Build(e tartype.Entry, prefix string) ([]byte, error) {
	var mode string
	var typeflag byte
	switch e.Kind {
	case tartype.KindDir:
		mode, typeflag = modeDir, TypeDir
	case tartype.KindRegular:
		mode, typeflag = modeFile, TypeReg
	default:
		return nil, tartype.NewFormatError(e.Path, tartype.ErrUnsupportedType)
	}

	if len(e.Name) > MaxNameLen {
		return nil, tartype.NewFormatError(e.Path, fmt.Errorf("%w: %q is %d bytes", tartype.ErrNameTooLong, e.Name, len(e.Name)))
	}
	if len(prefix) > MaxPrefixLen {
		return nil, tartype.NewFormatError(e.Path, fmt.Errorf("%w: %q is %d bytes", tartype.ErrPrefixTooLong, prefix, len(prefix)))
	}

	var size int64
	if e.Kind == tartype.KindRegular {
		size = e.Size
	}
	mtime := e.ModTime.Unix()
	if size < 0 || size > maxOctal {
		return nil, tartype.NewFormatError(e.Path, fmt.Errorf("%w: size %d", tartype.ErrFieldOverflow, size))
	}
	if mtime < 0 || mtime > maxOctal {
		return nil, tartype.NewFormatError(e.Path, fmt.Errorf("%w: mtime %d", tartype.ErrFieldOverflow, mtime))
	}

	h := make([]byte, BlockSize)
	copy(h[offName:offName+lenName], e.Name)
	copy(h[offMode:], mode)
	copy(h[offUID:], ownerID)
	copy(h[offGID:], ownerID)
	putOctal(h[offSize:offSize+lenNumeric], size)
	putOctal(h[offMtime:offMtime+lenNumeric], mtime)
	h[offTypeflag] = typeflag
	copy(h[offMagic:], magic)
	copy(h[offVersion:], version)
	copy(h[offPrefix:offPrefix+lenPrefix], prefix)

	putChecksum(h)
	return h, nil
}

// Checksum returns the unsigned sum of all header bytes with the checksum
// field counted as eight ASCII spaces.
func Checksum(h []byte) uint32 {
	var sum uint32
	for i, b := range h {
		if i >= offChksum && i < offChksum+lenChksum {
			b = ' '
		}
		sum += uint32(b)
	}
	return sum
}

// VerifyChecksum reports whether the checksum stored in h matches its content.
func VerifyChecksum(h []byte) bool {
	if len(h) != BlockSize {
		return false
	}
	stored, err := strconv.ParseUint(string(h[offChksum:offChksum+6]), 8, 32)
	if err != nil {
		return false
	}
	return uint32(stored) == Checksum(h) //nolint:gosec // parsed with bitSize 32
}

// Terminator returns the two zero blocks that close a tar archive.
func Terminator() []byte {
	return make([]byte, 2*BlockSize)
}

// putChecksum writes 6 zero-padded octal digits, NUL and space.
func putChecksum(h []byte) {
	copy(h[offChksum:offChksum+lenChksum], fmt.Sprintf("%06o\x00 ", Checksum(h)))
}

// putOctal writes v as zero-padded octal digits followed by a space,
// filling dst exactly. v must fit.
func putOctal(dst []byte, v int64) {
	digits := len(dst) - 1
	s := strconv.FormatInt(v, 8)
	pad := digits - len(s)
	for i := range pad {
		dst[i] = '0'
	}
	copy(dst[pad:digits], s)
	dst[digits] = ' '
}
