package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements the PathResolver interface on the local file system.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Canonicalize joins a relative path onto dir and resolves every symlink.
// The joined path is never cleaned as text: ".." must apply to the resolved
// parent, as it does for the kernel. The path must exist.
func (r *Resolver) Canonicalize(dir, path string) (string, error) {
	if !filepath.IsAbs(path) {
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", zerr.With(zerr.Wrap(err, "failed to make path absolute"), "path", path)
			}
			dir = wd
		}
		path = dir + string(filepath.Separator) + path
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}
	// Symlinks are resolved, so cleaning a relative dir is now safe.
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to make path absolute"), "path", resolved)
	}
	return abs, nil
}

// InScope reports whether the canonical path lies below the canonical root.
// Any resolution failure counts as out of scope.
func (r *Resolver) InScope(root, path string) bool {
	canonicalRoot, err := r.Canonicalize("", root)
	if err != nil {
		return false
	}
	canonicalPath, err := r.Canonicalize("", path)
	if err != nil {
		return false
	}
	return Contains(canonicalRoot, canonicalPath)
}

// Readable reports whether path can be opened for reading.
func (r *Resolver) Readable(path string) bool {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// Contains reports whether root is a separator-bounded prefix of path.
// Both arguments must already be canonical.
func Contains(root, path string) bool {
	if !strings.HasPrefix(path, root) {
		return false
	}
	if len(path) == len(root) || strings.HasSuffix(root, string(filepath.Separator)) {
		return true
	}
	return path[len(root)] == filepath.Separator
}
