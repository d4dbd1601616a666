package targen

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
)

// Check reports whether every entry in the tree rooted at path can be
// encoded, without reading any file content.
//
// Each unencodable entry is logged at warn level and passed to the
// ProblemFunc, if any. Checking continues past a problem, including into
// the children of a directory whose own header failed, so a single call
// reports every problem in the tree. The result is false if any problem
// was found.
//
// I/O errors such as a permission failure while listing a directory are not
// problems: they stop the walk and are returned. Check cannot see failures
// that only happen while reading file content, and the tree may change
// between Check and a later Generate.
func Check(ctx context.Context, path, base string, opts ...Option) (bool, error) {
	cfg := newConfig(opts)
	ok := true
	var entries, problems int
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		e, err := entryOf(p, d)
		if err != nil {
			return err
		}
		entries++
		if _, _, err := encodeHeader(e, base); err != nil {
			var fe *FormatError
			if !errors.As(err, &fe) {
				return err
			}
			ok = false
			problems++
			cfg.log().Warn("entry cannot be archived", "path", fe.Path, "reason", fe.Err.Error())
			if cfg.problem != nil {
				cfg.problem(fe)
			}
		}
		cfg.reportProgress(StageChecking, p, 0, 0, entries)
		return nil
	})
	if err != nil {
		return false, err
	}
	cfg.log().Debug("check finished", "path", path, "entries", entries, "problems", problems)
	return ok, nil
}
