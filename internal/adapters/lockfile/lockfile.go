// Package lockfile serializes access to shared files across processes with
// advisory file locks.
package lockfile

import (
	"errors"

	"github.com/gofrs/flock"
	"go.trai.ch/ccscope/internal/core/domain"
	"go.trai.ch/zerr"
)

// Lockfile is an advisory lock on one path.
type Lockfile struct {
	*flock.Flock
}

// New returns an unlocked Lockfile for filename. The file is created on first lock.
func New(filename string) *Lockfile {
	return &Lockfile{
		flock.New(filename),
	}
}

// WithExclusive runs fn while holding an exclusive lock on filename.
// There is no timeout: the call blocks until the lock is granted.
func WithExclusive(filename string, fn func() error) error {
	lock := New(filename)
	if err := lock.Lock(); err != nil {
		return errors.Join(domain.ErrLockFailed, zerr.With(zerr.Wrap(err, "failed to acquire exclusive lock"), "path", filename))
	}
	return lock.release(fn())
}

// WithShared runs fn while holding a shared lock on filename.
func WithShared(filename string, fn func() error) error {
	lock := New(filename)
	if err := lock.RLock(); err != nil {
		return errors.Join(domain.ErrLockFailed, zerr.With(zerr.Wrap(err, "failed to acquire shared lock"), "path", filename))
	}
	return lock.release(fn())
}

func (l *Lockfile) release(err error) error {
	if unlockErr := l.Unlock(); unlockErr != nil {
		return errors.Join(err, zerr.With(zerr.Wrap(unlockErr, "failed to release lock"), "path", l.Path()))
	}
	return err
}
