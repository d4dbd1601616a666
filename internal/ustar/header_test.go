package ustar

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltskv/targen/internal/tartype"
)

var testTime = time.Unix(1_700_000_000, 0)

func fileEntry(name string, size int64) tartype.Entry {
	return tartype.Entry{Path: "/src/" + name, Name: name, Kind: tartype.KindRegular, Size: size, ModTime: testTime}
}

func dirEntry(name string) tartype.Entry {
	return tartype.Entry{Path: "/src/" + name, Name: name, Kind: tartype.KindDir, Size: 4096, ModTime: testTime}
}

func TestBuild_Directory(t *testing.T) {
	t.Parallel()

	h, err := Build(dirEntry("root"), "")
	require.NoError(t, err)
	require.Len(t, h, BlockSize)

	assert.Equal(t, "root", strings.TrimRight(string(h[0:100]), "\x00"))
	assert.Equal(t, "000755 \x00", string(h[100:108]))
	assert.Equal(t, "000777 \x00", string(h[108:116]))
	assert.Equal(t, "000777 \x00", string(h[116:124]))
	assert.Equal(t, "00000000000 ", string(h[124:136]), "directory size is never computed")
	assert.Equal(t, byte('5'), h[156])
	assert.Equal(t, "ustar\x00", string(h[257:263]))
	assert.Equal(t, "00", string(h[263:265]))
}

func TestBuild_RegularFile(t *testing.T) {
	t.Parallel()

	h, err := Build(fileEntry("a.txt", 10), "root")
	require.NoError(t, err)
	require.Len(t, h, BlockSize)

	assert.Equal(t, "000644 \x00", string(h[100:108]))
	assert.Equal(t, "00000000012 ", string(h[124:136]))
	assert.Equal(t, fmt.Sprintf("%011o ", testTime.Unix()), string(h[136:148]))
	assert.Equal(t, byte('0'), h[156])
	assert.Equal(t, "root", strings.TrimRight(string(h[345:500]), "\x00"))
}

func TestBuild_ZeroFields(t *testing.T) {
	t.Parallel()

	h, err := Build(fileEntry("a.txt", 1), "some/prefix")
	require.NoError(t, err)

	for _, r := range []struct {
		name     string
		from, to int
	}{
		{"linkname", 157, 257},
		{"uname", 265, 297},
		{"gname", 297, 329},
		{"devmajor", 329, 337},
		{"devminor", 337, 345},
		{"padding", 500, 512},
	} {
		assert.Equal(t, make([]byte, r.to-r.from), h[r.from:r.to], r.name)
	}
}

func TestBuild_Checksum(t *testing.T) {
	t.Parallel()

	entries := []tartype.Entry{
		dirEntry("d"),
		fileEntry("a.txt", 0),
		fileEntry("big.bin", 1<<32),
		fileEntry("ünïcödé", 12345),
	}
	for _, e := range entries {
		t.Run(e.Name, func(t *testing.T) {
			t.Parallel()
			h, err := Build(e, "p/q")
			require.NoError(t, err)

			var want uint32
			for i, b := range h {
				if i >= 148 && i < 156 {
					b = ' '
				}
				want += uint32(b)
			}
			assert.Equal(t, fmt.Sprintf("%06o\x00 ", want), string(h[148:156]))
			assert.True(t, VerifyChecksum(h))
		})
	}
}

func TestVerifyChecksum_DetectsCorruption(t *testing.T) {
	t.Parallel()

	h, err := Build(fileEntry("a.txt", 10), "")
	require.NoError(t, err)
	h[0] = 'b'
	assert.False(t, VerifyChecksum(h))
	assert.False(t, VerifyChecksum(h[:100]))
}

func TestBuild_FieldLimits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entry   tartype.Entry
		prefix  string
		wantErr error
	}{
		{"name 99 bytes", fileEntry(strings.Repeat("a", 99), 1), "", nil},
		{"name 100 bytes", fileEntry(strings.Repeat("a", 100), 1), "", tartype.ErrNameTooLong},
		{"name 100 utf8 bytes", fileEntry(strings.Repeat("é", 50), 1), "", tartype.ErrNameTooLong},
		{"prefix 154 bytes", fileEntry("a", 1), strings.Repeat("p", 154), nil},
		{"prefix 155 bytes", fileEntry("a", 1), strings.Repeat("p", 155), tartype.ErrPrefixTooLong},
		{"max size", fileEntry("a", 1<<33-1), "", nil},
		{"size overflow", fileEntry("a", 1<<33), "", tartype.ErrFieldOverflow},
		{"negative mtime", tartype.Entry{Path: "a", Name: "a", Kind: tartype.KindRegular, ModTime: time.Unix(-1, 0)}, "", tartype.ErrFieldOverflow},
		{"other kind", tartype.Entry{Path: "/src/link", Name: "link", Kind: tartype.KindOther}, "", tartype.ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, err := Build(tt.entry, tt.prefix)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Len(t, h, BlockSize)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, tartype.ErrFormat)
			var fe *tartype.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.entry.Path, fe.Path)
			assert.Nil(t, h)
		})
	}
}

func TestBuild_UnsupportedTypeMessage(t *testing.T) {
	t.Parallel()

	_, err := Build(tartype.Entry{Path: "/src/link", Name: "link", Kind: tartype.KindOther}, "")
	require.Error(t, err)
	assert.Equal(t, "/src/link: not a regular file or a directory", err.Error())
}

func TestBuild_IgnoresSizeForDirectories(t *testing.T) {
	t.Parallel()

	d := dirEntry("d")
	d.Size = 1 << 40
	h, err := Build(d, "")
	require.NoError(t, err)
	assert.Equal(t, "00000000000 ", string(h[124:136]))
}

func TestTerminator(t *testing.T) {
	t.Parallel()

	term := Terminator()
	assert.Len(t, term, 2*BlockSize)
	assert.Equal(t, make([]byte, 1024), term)
}
