// pkg/platform/provider.go
package platform

import (
	"os"
	"os/exec"
	"runtime"
)

// Provider abstracts the OS signals detection reads, so tests can fake them
type Provider interface {
	// GOOS returns the operating system name ("linux", "darwin", ...)
	GOOS() string

	// GOARCH returns the machine architecture ("amd64", "arm64", ...)
	GOARCH() string

	// ReadFile reads a file from the host filesystem
	ReadFile(path string) ([]byte, error)

	// LookPath reports the full path of a binary on PATH
	LookPath(name string) (string, error)
}

// OSProvider implements Provider using real OS calls
type OSProvider struct{}

func (OSProvider) GOOS() string {
	return runtime.GOOS
}

func (OSProvider) GOARCH() string {
	return runtime.GOARCH
}

func (OSProvider) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSProvider) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// commandExists checks if a command is available in PATH
func commandExists(p Provider, cmd string) bool {
	_, err := p.LookPath(cmd)
	return err == nil
}

// contains checks if a string slice contains a value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
