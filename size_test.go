package targen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files map[string][]byte
		want  uint64
	}{
		{"empty directory", map[string][]byte{}, 512},
		{"one small file", map[string][]byte{"a.txt": []byte("0123456789")}, 512 + 512 + 512},
		{"empty file", map[string][]byte{"e": {}}, 512 + 512},
		{"exact block", map[string][]byte{"b": make([]byte, 512)}, 512 + 512 + 512},
		{"nested", map[string][]byte{
			"x/y/z.bin": make([]byte, 1025),
			"x/e/":      nil,
			"top":       make([]byte, 1),
		}, 512*6 + 1536 + 512},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root, _ := createTree(t, tt.files)
			got, err := CalcSize(context.Background(), root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalcSize_RegularFile(t *testing.T) {
	t.Parallel()

	root, _ := createTree(t, map[string][]byte{"f": make([]byte, 513)})
	got, err := CalcSize(context.Background(), filepath.Join(root, "f"))
	require.NoError(t, err)
	assert.Equal(t, uint64(512+1024), got)
}

func TestCalcSize_MatchesGeneratedLength(t *testing.T) {
	t.Parallel()

	root, base := createTree(t, map[string][]byte{
		"a":       bytes.Repeat([]byte("a"), 7),
		"b/c":     bytes.Repeat([]byte("c"), 5000),
		"b/d/e":   {},
		"b/d/f/":  nil,
		"g/h/i/j": bytes.Repeat([]byte("j"), 512),
	})

	size, err := CalcSize(context.Background(), root)
	require.NoError(t, err)

	blocks, err := collect(Generate(context.Background(), root, base, WithBlockingFactor(3)))
	require.NoError(t, err)
	assert.Equal(t, uint64(len(bytes.Join(blocks, nil))), size)
}

func TestCalcSize_UnsupportedType(t *testing.T) {
	t.Parallel()

	root, _ := createTree(t, map[string][]byte{"a": []byte("a")})
	require.NoError(t, os.Symlink(filepath.Join(root, "a"), filepath.Join(root, "link")))

	_, err := CalcSize(context.Background(), root)
	require.ErrorIs(t, err, ErrUnsupportedType)
	require.ErrorIs(t, err, ErrFormat)
}

func TestCalcSize_IgnoresNameLimits(t *testing.T) {
	t.Parallel()

	root, _ := createTree(t, map[string][]byte{string(bytes.Repeat([]byte("n"), 120)): []byte("x")})
	got, err := CalcSize(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, uint64(512*3), got)
}

func TestCalcSize_Progress(t *testing.T) {
	t.Parallel()

	root, _ := createTree(t, map[string][]byte{"a": []byte("a"), "b": []byte("b")})
	var last ProgressEvent
	var calls int
	got, err := CalcSize(context.Background(), root, WithProgress(func(e ProgressEvent) {
		last = e
		calls++
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, StageSizing, last.Stage)
	assert.Equal(t, got, last.BytesDone)
	assert.Equal(t, 3, last.EntriesDone)
}

func TestCalcSize_ContextCanceled(t *testing.T) {
	t.Parallel()

	root, _ := createTree(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CalcSize(ctx, root)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEntrySize(t *testing.T) {
	t.Parallel()

	n, err := entrySize(regularEntry(1<<63 - 1))
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<63+512), n)

	_, err = entrySize(regularEntry(-1))
	require.ErrorIs(t, err, ErrSizeOverflow)
}
