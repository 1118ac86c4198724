// Package ledger persists compile units to the append-only ledger file shared
// by every toolchain process of a build.
package ledger

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ccscope/internal/adapters/lockfile"
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/ccscope/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Ledger = (*Ledger)(nil)

// Ledger implements ports.Ledger on a locked, append-only text file.
type Ledger struct{}

// New creates a new Ledger.
func New() *Ledger {
	return &Ledger{}
}

// Append writes entry to the ledger at path under an exclusive lock.
// The entry is written with one write call so it never interleaves with
// another writer's entry. On failure earlier entries are left untouched.
func (l *Ledger) Append(path string, entry domain.LedgerEntry) error {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Join(domain.ErrLedgerWriteFailed, zerr.With(zerr.Wrap(err, "failed to create ledger directory"), "path", path))
	}

	//nolint:gosec // Path is derived from the workspace root
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Join(domain.ErrLedgerWriteFailed, zerr.With(zerr.Wrap(err, "failed to open ledger"), "path", path))
	}
	defer f.Close() //nolint:errcheck // Write errors are reported below

	data := entry.Encode()
	return lockfile.WithExclusive(path, func() error {
		if _, err := f.Write(data); err != nil {
			return errors.Join(domain.ErrLedgerWriteFailed, zerr.With(zerr.Wrap(err, "failed to write ledger entry"), "path", path))
		}
		return nil
	})
}

// Read returns every entry of the ledger at path. A missing ledger has no entries.
func (l *Ledger) Read(path string) ([]domain.LedgerEntry, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrLedgerReadFailed, zerr.With(zerr.Wrap(err, "failed to stat ledger"), "path", path))
	}

	var entries []domain.LedgerEntry
	err := lockfile.WithShared(path, func() error {
		f, err := os.Open(path) //nolint:gosec // Path is derived from the workspace root
		if err != nil {
			return zerr.Wrap(err, "failed to open ledger")
		}
		defer f.Close() //nolint:errcheck // Read-only

		entries, err = domain.ParseLedger(f)
		if err != nil {
			return zerr.Wrap(err, "failed to parse ledger")
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(domain.ErrLedgerReadFailed, zerr.With(err, "path", path))
	}
	return entries, nil
}
