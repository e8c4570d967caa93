// pkg/pkgmgr/brew.go
package pkgmgr

import (
	"context"
)

// BrewInstaller installs packages through Homebrew on macOS
type BrewInstaller struct {
	config *Config
}

// NewBrewInstaller creates a new Homebrew backend
func NewBrewInstaller(cfg *Config) *BrewInstaller {
	cfg = fillDefaults(cfg)
	// Homebrew refuses to run under sudo
	cfg.Sudo = false
	return &BrewInstaller{config: cfg}
}

// Name returns the backend name
func (b *BrewInstaller) Name() string {
	return "brew"
}

// IsAvailable checks if brew is on PATH
func (b *BrewInstaller) IsAvailable() bool {
	_, err := b.config.Runner.LookPath("brew")
	return err == nil
}

// Install installs packages with brew install
func (b *BrewInstaller) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	args := append([]string{"install"}, packages...)
	b.config.Logger.Info().Strs("packages", packages).Msg("installing packages with brew")

	out, err := b.config.Runner.Run(ctx, "brew", args...)
	if err != nil {
		return &InstallError{Backend: b.Name(), Output: string(out), Err: err}
	}

	return nil
}
