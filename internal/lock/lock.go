// Package lock serializes runs on the same directory with an OS-level
// advisory lock held on the directory itself.
package lock

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

var (
	// ErrLocked is returned when another run holds the directory lock.
	ErrLocked = errors.New("directory is locked by another run")
	// ErrDirRequired is returned when the directory path is empty.
	ErrDirRequired = errors.New("directory is required")
)

type DirLock struct {
	dir   string
	flock *flock.Flock
}

// Acquire takes an exclusive, non-blocking lock on dir. The directory is
// opened read-only, so no lock file is created.
func Acquire(dir string) (*DirLock, error) {
	if dir == "" {
		return nil, ErrDirRequired
	}

	fl := flock.New(dir, flock.SetFlag(os.O_RDONLY))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("error acquiring lock for %s: %w", dir, err)
	}
	if !locked {
		return nil, ErrLocked
	}

	return &DirLock{dir: dir, flock: fl}, nil
}

// Release drops the lock. Calling it more than once is a no-op.
func (l *DirLock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	err := l.flock.Unlock()
	l.flock = nil
	return err
}
