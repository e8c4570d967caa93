// pkg/pkgmgr/resolve.go
package pkgmgr

import (
	"fmt"

	"github.com/vimstrap/vimstrap/pkg/platform"
)

// For resolves which backend to use for a detected platform kind.
// KindUnknown has no backend; callers are expected to skip installation
// and warn rather than fail the whole run.
func For(kind platform.Kind, cfg *Config) (Installer, error) {
	switch kind {
	case platform.KindDebian:
		return NewAptInstaller(cfg), nil
	case platform.KindRedHat:
		return NewDnfInstaller(cfg), nil
	case platform.KindDarwin:
		return NewBrewInstaller(cfg), nil
	case platform.KindUnknown:
		return nil, fmt.Errorf("no package manager for unknown platform")
	default:
		return nil, fmt.Errorf("no package manager for platform kind %q", kind)
	}
}
