// pkg/bootstrap/errors.go
package bootstrap

import (
	"errors"
	"fmt"
)

var (
	// ErrPlatformUnsupported indicates the platform could not be mapped to a package manager
	ErrPlatformUnsupported = errors.New("platform not supported")

	// ErrPackageInstallFailed indicates the system package manager exited non-zero
	ErrPackageInstallFailed = errors.New("package install failed")

	// ErrNetworkFetchFailed indicates the bootstrap download failed
	ErrNetworkFetchFailed = errors.New("network fetch failed")

	// ErrFileBackupFailed indicates an existing path could not be moved aside
	ErrFileBackupFailed = errors.New("file backup failed")

	// ErrConfigWriteFailed indicates the configuration file could not be written
	ErrConfigWriteFailed = errors.New("config write failed")

	// ErrExternalToolFailed indicates the editor batch invocation exited non-zero
	ErrExternalToolFailed = errors.New("external tool failed")
)

// Error wraps a step failure with the operation and path involved
type Error struct {
	Op   string // Operation that failed
	Path string // Filesystem path if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// stepError chains a step failure onto its taxonomy sentinel so callers can
// test with errors.Is while keeping the original cause
func stepError(sentinel error, op, path string, err error) error {
	return &Error{Op: op, Path: path, Err: fmt.Errorf("%w: %w", sentinel, err)}
}
