package ports

// RunLocker guards report generation for one repository
type RunLocker interface {
	// TryLock takes the lock without blocking.
	// Returns domain.ErrRunInProgress when another process holds it.
	TryLock(rootPath string) (release func() error, err error)
}
