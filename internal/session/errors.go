package session

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoActiveSession is returned by operations that need a logged-in user
	ErrNoActiveSession = errors.New("no active session")
	// ErrNilProfile is returned when Login is called without a profile
	ErrNilProfile = errors.New("profile is required")
	// ErrClosed is returned once the container has been closed
	ErrClosed = errors.New("session container is closed")
)

// StorageWriteError reports a persistence step that failed after the
// in-memory state had already been updated.
type StorageWriteError struct {
	Op   string
	Keys []string
	Err  error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("session %s: persist %s: %v", e.Op, strings.Join(e.Keys, ","), e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}
