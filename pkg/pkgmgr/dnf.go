// pkg/pkgmgr/dnf.go
package pkgmgr

import (
	"context"
)

// DnfInstaller installs packages through dnf on RedHat-family systems,
// falling back to yum on older releases
type DnfInstaller struct {
	config *Config
}

// NewDnfInstaller creates a new dnf backend
func NewDnfInstaller(cfg *Config) *DnfInstaller {
	return &DnfInstaller{config: fillDefaults(cfg)}
}

// Name returns the backend name
func (d *DnfInstaller) Name() string {
	return "dnf"
}

// IsAvailable checks if dnf or yum is on PATH
func (d *DnfInstaller) IsAvailable() bool {
	return d.binary() != ""
}

// Install installs packages with dnf install -y (or yum install -y)
func (d *DnfInstaller) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}

	bin := d.binary()
	if bin == "" {
		bin = "dnf"
	}

	args := append([]string{"install", "-y"}, packages...)
	d.config.Logger.Info().Str("binary", bin).Strs("packages", packages).
		Msg("installing packages")

	name := bin
	if d.config.Sudo {
		args = append([]string{bin}, args...)
		name = "sudo"
	}

	out, err := d.config.Runner.Run(ctx, name, args...)
	if err != nil {
		return &InstallError{Backend: d.Name(), Output: string(out), Err: err}
	}

	return nil
}

// binary picks dnf when present, yum otherwise, empty when neither exists
func (d *DnfInstaller) binary() string {
	if _, err := d.config.Runner.LookPath("dnf"); err == nil {
		return "dnf"
	}
	if _, err := d.config.Runner.LookPath("yum"); err == nil {
		return "yum"
	}
	return ""
}
