package fs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ShimInstaller = (*ShimInstaller)(nil)

// ShimInstaller populates a shim directory with symlinks to one executable.
type ShimInstaller struct{}

// NewShimInstaller creates a new ShimInstaller.
func NewShimInstaller() *ShimInstaller {
	return &ShimInstaller{}
}

// Install makes dir/<name> a symlink to target for every name.
// Links that already point at target are left alone; anything else at the
// location is replaced.
func (s *ShimInstaller) Install(dir, target string, names []string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Join(domain.ErrShimInstallFailed, zerr.With(zerr.Wrap(err, "failed to create shim directory"), "path", dir))
	}

	var result *multierror.Error
	for _, name := range names {
		if err := s.link(filepath.Join(dir, name), target); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(domain.ErrShimInstallFailed, err)
	}
	return nil
}

func (s *ShimInstaller) link(path, target string) error {
	if current, err := os.Readlink(path); err == nil && current == target {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove stale shim"), "path", path)
	}
	if err := os.Symlink(target, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create shim"), "path", path)
	}
	return nil
}
