// Package testutil builds file trees and parses archives for tests.
package testutil

import (
	"archive/tar"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ModTime is the modification time WriteTree applies to every entry.
var ModTime = time.Unix(1_700_000_000, 0)

// WriteTree creates files under dir from a map of slash-separated relative
// path to content. A path ending in "/" creates an empty directory. Every
// created entry, and dir itself, gets ModTime.
func WriteTree(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		if path[len(path)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, content, 0o644))
	}
	require.NoError(t, filepath.Walk(dir, func(p string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		return os.Chtimes(p, ModTime, ModTime)
	}))
}

// Entry is a decoded archive member.
type Entry struct {
	Name     string
	Typeflag byte
	Size     int64
	Mode     int64
	ModTime  time.Time
	Content  []byte
}

// ReadArchive decodes data with archive/tar, which also verifies every
// header checksum. archive/tar accepts a body without end-of-archive blocks.
func ReadArchive(t *testing.T, data []byte) []Entry {
	t.Helper()
	tr := tar.NewReader(bytes.NewReader(data))
	var entries []Entry
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return entries
		}
		require.NoError(t, err)
		content, err := io.ReadAll(tr)
		require.NoError(t, err)
		entries = append(entries, Entry{
			Name:     hdr.Name,
			Typeflag: hdr.Typeflag,
			Size:     hdr.Size,
			Mode:     hdr.Mode,
			ModTime:  hdr.ModTime,
			Content:  content,
		})
	}
}

// Names returns the member names of entries in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
