// pkg/pkgmgr/runner.go
package pkgmgr

import (
	"context"
	"os/exec"
)

// Runner abstracts subprocess execution so tests can capture command lines
// instead of spawning real processes
type Runner interface {
	// Run executes a command and returns its combined output
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// LookPath reports the full path of a binary on PATH
	LookPath(name string) (string, error)
}

// ExecRunner runs commands through os/exec
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
