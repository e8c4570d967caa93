// vimstrap.go
package vimstrap

import (
	"context"

	"github.com/vimstrap/vimstrap/pkg/bootstrap"
	"github.com/vimstrap/vimstrap/pkg/core"
	"github.com/vimstrap/vimstrap/pkg/platform"
)

// Re-export the main types for convenience
type (
	Config        = core.Config
	RenderOptions = core.RenderOptions
	Platform      = platform.Platform
	Kind          = platform.Kind
	Report        = bootstrap.Report
	StepResult    = bootstrap.StepResult
)

// Re-export platform kinds
const (
	KindRedHat  = platform.KindRedHat
	KindDebian  = platform.KindDebian
	KindDarwin  = platform.KindDarwin
	KindUnknown = platform.KindUnknown
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Run bootstraps the local editor environment with the given configuration
// and returns a report of every step. A nil config uses the defaults.
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	runner := &bootstrap.Runner{Config: cfg}
	return runner.Run(ctx)
}
