// errors.go
package vimstrap

import (
	"github.com/vimstrap/vimstrap/pkg/bootstrap"
)

// Error taxonomy, re-exported from pkg/bootstrap so callers can match step
// failures with errors.Is against this package alone
var (
	ErrPlatformUnsupported  = bootstrap.ErrPlatformUnsupported
	ErrPackageInstallFailed = bootstrap.ErrPackageInstallFailed
	ErrNetworkFetchFailed   = bootstrap.ErrNetworkFetchFailed
	ErrFileBackupFailed     = bootstrap.ErrFileBackupFailed
	ErrConfigWriteFailed    = bootstrap.ErrConfigWriteFailed
	ErrExternalToolFailed   = bootstrap.ErrExternalToolFailed
)

// Error wraps a step failure with the operation and path involved
type Error = bootstrap.Error
