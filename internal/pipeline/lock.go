package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock guards a data directory against concurrent pipeline runs.
type Lock struct {
	path string
	lock *flock.Flock
}

// NewLock prepares a lock file inside dir without acquiring it.
func NewLock(dir string) *Lock {
	path := filepath.Join(dir, "marquee.lock")
	return &Lock{path: path, lock: flock.New(path)}
}

// Acquire takes the lock, failing immediately when another run holds it.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("another marquee run is active (lock %s)", l.path)
	}
	return nil
}

// Release drops the lock. Safe to call when the lock was never acquired.
func (l *Lock) Release() {
	if l == nil || l.lock == nil {
		return
	}
	_ = l.lock.Unlock()
}
