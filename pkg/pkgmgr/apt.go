// pkg/pkgmgr/apt.go
package pkgmgr

import (
	"context"
)

// AptInstaller installs packages through apt-get on Debian-family systems
type AptInstaller struct {
	config *Config
}

// NewAptInstaller creates a new apt backend
func NewAptInstaller(cfg *Config) *AptInstaller {
	return &AptInstaller{config: fillDefaults(cfg)}
}

// Name returns the backend name
func (a *AptInstaller) Name() string {
	return "apt"
}

// IsAvailable checks if apt-get is on PATH
func (a *AptInstaller) IsAvailable() bool {
	_, err := a.config.Runner.LookPath("apt-get")
	return err == nil
}

// Install installs packages with apt-get install -y, refreshing the package
// index first when configured
func (a *AptInstaller) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	if a.config.Update {
		a.config.Logger.Debug().Msg("refreshing apt package index")
		if out, err := a.run(ctx, "update"); err != nil {
			// A stale index is not fatal; install may still succeed
			a.config.Logger.Warn().Err(err).Str("output", string(out)).
				Msg("apt-get update failed, continuing with stale index")
		}
	}

	args := append([]string{"install", "-y"}, packages...)
	a.config.Logger.Info().Strs("packages", packages).Msg("installing packages with apt-get")

	out, err := a.run(ctx, args...)
	if err != nil {
		return &InstallError{Backend: a.Name(), Output: string(out), Err: err}
	}

	return nil
}

func (a *AptInstaller) run(ctx context.Context, args ...string) ([]byte, error) {
	name := "apt-get"
	if a.config.Sudo {
		args = append([]string{name}, args...)
		name = "sudo"
	}
	return a.config.Runner.Run(ctx, name, args...)
}
