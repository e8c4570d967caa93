// pkg/pkgmgr/types.go
package pkgmgr

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Installer defines the common interface for system package manager backends
type Installer interface {
	// Name returns the backend name (e.g., "apt", "dnf", "brew")
	Name() string

	// Install installs the given packages in one invocation
	Install(ctx context.Context, packages []string) error

	// IsAvailable checks if this backend is available on the system
	IsAvailable() bool
}

// Config configures a package manager backend
type Config struct {
	Runner Runner         // Subprocess runner (ExecRunner if nil)
	Sudo   bool           // Prefix invocations with sudo
	Update bool           // Refresh the package index before installing
	Logger zerolog.Logger // Backend logger
}

// InstallError wraps a non-zero package manager exit with its captured output
type InstallError struct {
	Backend string // Backend that failed
	Output  string // Combined stdout and stderr of the subprocess
	Err     error  // Underlying exec error
}

func (e *InstallError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s install: %v\n%s", e.Backend, e.Err, e.Output)
	}
	return fmt.Sprintf("%s install: %v", e.Backend, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// fillDefaults normalizes a backend config
func fillDefaults(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Runner == nil {
		cfg.Runner = ExecRunner{}
	}
	return cfg
}
