package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrPathNotFound      = errors.New("no such file or directory")
	ErrDirBudgetExceeded = errors.New("too many open directories")
)

// IsArchive by extension. O(1) map lookup
var archiveExt = map[string]struct{}{
	".zip": {}, ".tar": {}, ".gz": {}, ".bz2": {}, ".xz": {},
	".rar": {}, ".br": {}, ".lz4": {}, ".lz": {}, ".mz": {},
	".sz": {}, ".s2": {}, ".zz": {}, ".zst": {}, ".7z": {},
	".tgz": {},
}

// CollectPaths walks root depth-first in lexical order and returns every regular file
// under it. Symlinks are neither followed nor returned, and subtrees named by a VCS
// marker are pruned. A directory nested deeper than opts.MaxOpenDirs aborts the walk
// with ErrDirBudgetExceeded. A missing or inaccessible root yields ErrPathNotFound
// and no paths.
func CollectPaths(ctx context.Context, root string, opts SearchOptions) ([]string, error) {
	budget := opts.MaxOpenDirs
	if budget <= 0 {
		budget = DefaultMaxOpenDirs
	}
	markers := opts.markerSet()

	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if path == root {
				return fmt.Errorf("%s: %w", root, ErrPathNotFound)
			}
			// unreadable directory: keep what we have and move on
			logrus.WithError(err).WithField("path", path).Warn("Skip unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && hasMarker(path, markers) {
				return filepath.SkipDir
			}
			if depth := dirDepth(root, path); depth > budget {
				return fmt.Errorf("%s: depth %d over limit %d: %w", path, depth, budget, ErrDirBudgetExceeded)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if hasMarker(path, markers) {
			return nil
		}
		if root == "." && path != root {
			// WalkDir cleans "./x" to "x"; keep the prefix the user's root implies
			path = "." + string(os.PathSeparator) + path
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"root": root, "files": len(paths)}).Debug("Traversal finished")
	return paths, nil
}

// IsVCSPath reports whether any segment of path is a VCS metadata marker.
func (o *SearchOptions) IsVCSPath(path string) bool {
	return hasMarker(path, o.markerSet())
}

func hasMarker(path string, markers map[string]struct{}) bool {
	if len(markers) == 0 {
		return false
	}
	for _, seg := range strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' }) {
		if _, ok := markers[seg]; ok {
			return true
		}
	}
	return false
}

// dirDepth counts the directories open while visiting dir: the root is 1.
func dirDepth(root, dir string) int {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return 1
	}
	return strings.Count(rel, string(os.PathSeparator)) + 2
}

func IsArchive(path string) bool {
	_, ok := archiveExt[strings.ToLower(filepath.Ext(path))]
	return ok
}
