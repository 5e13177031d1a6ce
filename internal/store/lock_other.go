//go:build !unix

package store

// DirLock is a no-op where flock is unavailable.
type DirLock struct{}

// Lock always succeeds on this platform.
func Lock(dir string) (*DirLock, error) { return &DirLock{}, nil }

func (l *DirLock) Unlock() error { return nil }
