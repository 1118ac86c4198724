// Package targets implements the shared, deduplicated set of build target names.
package targets

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ccscope/internal/adapters/lockfile"
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/zerr"
)

// MaxReadBytes bounds how much of the current set a merge reads back.
const MaxReadBytes = 1 << 20

var _ ports.TargetSet = (*Store)(nil)

// Store implements ports.TargetSet using a line-oriented text file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Merge appends every name of names that the file at path does not yet hold.
// The file is created if absent. Names are compared by whole line.
func (s *Store) Merge(path string, names []string) error {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Join(domain.ErrTargetSetWriteFailed, zerr.With(zerr.Wrap(err, "failed to create directory for target set"), "path", path))
	}

	//nolint:gosec // Path is derived from the workspace root
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Join(domain.ErrTargetSetWriteFailed, zerr.With(zerr.Wrap(err, "failed to open target set"), "path", path))
	}
	defer f.Close() //nolint:errcheck // Write errors are reported below

	return lockfile.WithExclusive(path, func() error {
		current, err := io.ReadAll(io.LimitReader(f, MaxReadBytes))
		if err != nil {
			return errors.Join(domain.ErrTargetSetReadFailed, zerr.With(zerr.Wrap(err, "failed to read target set"), "path", path))
		}

		info, err := f.Stat()
		if err != nil {
			return errors.Join(domain.ErrTargetSetReadFailed, zerr.With(zerr.Wrap(err, "failed to stat target set"), "path", path))
		}

		data := missingLines(current, int64(len(current)) == info.Size(), names)
		if len(data) == 0 {
			return nil
		}
		if _, err := f.Write(data); err != nil {
			return errors.Join(domain.ErrTargetSetWriteFailed, zerr.With(zerr.Wrap(err, "failed to write target set"), "path", path))
		}
		return nil
	})
}

// List returns the recorded names in file order without duplicates. Blank
// lines and lines starting with '#' are skipped.
func (s *Store) List(path string) ([]string, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrTargetsListNotFound, "path", path)
		}
		return nil, errors.Join(domain.ErrTargetSetReadFailed, zerr.With(zerr.Wrap(err, "failed to stat target set"), "path", path))
	}

	var names []string
	err := lockfile.WithShared(path, func() error {
		f, err := os.Open(path) //nolint:gosec // Path is derived from the workspace root
		if err != nil {
			return zerr.Wrap(err, "failed to open target set")
		}
		defer f.Close() //nolint:errcheck // Read-only

		seen := make(map[string]bool)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") || seen[line] {
				continue
			}
			seen[line] = true
			names = append(names, line)
		}
		return scanner.Err()
	})
	if err != nil {
		return nil, errors.Join(domain.ErrTargetSetReadFailed, zerr.With(err, "path", path))
	}
	return names, nil
}

// missingLines renders the names absent from current, each on its own line.
// complete reports that current holds the whole file; only then is a torn
// last line terminated first. A read cut short ends in a fragment, which
// matches nothing.
func missingLines(current []byte, complete bool, names []string) []byte {
	if !complete {
		if i := bytes.LastIndexByte(current, '\n'); i >= 0 {
			current = current[:i+1]
		} else {
			current = nil
		}
	}

	present := make(map[string]bool)
	for _, line := range bytes.Split(current, []byte{'\n'}) {
		present[string(line)] = true
	}

	var buf bytes.Buffer
	for _, name := range names {
		if name == "" || strings.ContainsAny(name, "\n\r") || present[name] {
			continue
		}
		present[name] = true
		buf.WriteString(name)
		buf.WriteByte('\n')
	}

	if buf.Len() > 0 && len(current) > 0 && current[len(current)-1] != '\n' {
		return append([]byte{'\n'}, buf.Bytes()...)
	}
	return buf.Bytes()
}
