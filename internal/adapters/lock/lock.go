package lock

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
)

// errWouldBlock is returned by tryLockFile when another holder owns the lock
var errWouldBlock = errors.New("lock held by another process")

// FileLocker implements ports.RunLocker with one lock file per repository
type FileLocker struct {
	dir string
}

// Verify interface compliance at compile time
var _ ports.RunLocker = (*FileLocker)(nil)

// NewFileLocker creates a locker that keeps lock files in dir
// (the system temp directory when empty)
func NewFileLocker(dir string) *FileLocker {
	if dir == "" {
		dir = os.TempDir()
	}
	return &FileLocker{dir: dir}
}

// LockPath returns the lock file used for rootPath
func (l *FileLocker) LockPath(rootPath string) string {
	sum := sha1.Sum([]byte(filepath.Clean(rootPath)))
	return filepath.Join(l.dir, fmt.Sprintf("diffreport-%s.lock", hex.EncodeToString(sum[:])[:12]))
}

// TryLock implements ports.RunLocker.TryLock
func (l *FileLocker) TryLock(rootPath string) (func() error, error) {
	path := l.LockPath(rootPath)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		file.Close()
		if errors.Is(err, errWouldBlock) {
			logging.Logger.Warn("Report generation already running", "repo", rootPath, "lock", path)
			return nil, domain.ErrRunInProgress
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	logging.Logger.Debug("Run lock acquired", "repo", rootPath, "lock", path)

	release := func() error {
		defer file.Close()
		if err := unlockFile(file); err != nil {
			return fmt.Errorf("failed to unlock %s: %w", path, err)
		}
		logging.Logger.Debug("Run lock released", "lock", path)
		return nil
	}
	return release, nil
}
