package search

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/lks/internal/debug"
	lkserrors "github.com/standardbeagle/lks/internal/errors"
)

// ListFiles expands pattern under root and returns the matching regular
// files, sorted, with exclusion patterns filtered out. This is the only
// place a run can fail outright: a bad root or an invalid pattern is a
// listing error, which the coordinator reports and absorbs.
func ListFiles(root, pattern string, exclude []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, lkserrors.NewListError(root, pattern, err)
	}
	if !info.IsDir() {
		return nil, lkserrors.NewListError(root, pattern, fmt.Errorf("not a directory"))
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, lkserrors.NewListError(root, pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.FilepathGlob(
		filepath.Join(root, pattern),
		doublestar.WithFilesOnly(),
	)
	if err != nil {
		return nil, lkserrors.NewListError(root, pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, path := range matches {
		if isExcluded(root, path, exclude) {
			debug.LogScan("excluding %s\n", path)
			continue
		}
		files = append(files, path)
	}

	// Deterministic input order keeps partitioning reproducible
	sort.Strings(files)

	debug.LogScan("enumerated %d files under %s (pattern %q, %d excluded)\n",
		len(files), root, pattern, len(matches)-len(files))
	return files, nil
}

// isExcluded matches the slash-normalized path relative to root against
// each exclusion pattern. A malformed pattern never breaks enumeration;
// it simply does not match.
func isExcluded(root, path string, exclude []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	normalized := filepath.ToSlash(rel)

	for _, pattern := range exclude {
		matched, err := doublestar.Match(pattern, normalized)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
