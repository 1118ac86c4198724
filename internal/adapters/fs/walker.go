// Package fs provides file system adapters for resolving, walking and hashing files.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactWalker = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root, skipping VCS metadata and ignored entries.
// Yielded paths include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}

			// Skip directories, yield files
			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// Preprocessed returns the mirrored preprocessed files below root, relative
// to root and sorted. A missing root yields no files.
func (w *Walker) Preprocessed(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat mirror root"), "path", root)
	}

	var files []string
	for path := range w.WalkFiles(root, nil) {
		if !strings.HasSuffix(path, domain.PreprocessedSuffix) {
			continue
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		files = append(files, rel)
	}
	sort.Strings(files)
	return files, nil
}

// shouldSkip checks whether an entry is excluded. The action is
// filepath.SkipDir for directories and nil for files.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	// Always skip VCS metadata
	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
