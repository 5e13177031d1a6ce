package store

import "errors"

// LockFile is the name of the lock file inside a data directory.
const LockFile = ".tfedit.lock"

// ErrLocked is returned when another process holds the directory lock.
var ErrLocked = errors.New("data directory is locked by another editor")
