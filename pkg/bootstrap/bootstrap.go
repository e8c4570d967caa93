// pkg/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/vimstrap/vimstrap/pkg/backup"
	"github.com/vimstrap/vimstrap/pkg/core"
	"github.com/vimstrap/vimstrap/pkg/editor"
	"github.com/vimstrap/vimstrap/pkg/fetch"
	"github.com/vimstrap/vimstrap/pkg/pkgmgr"
	"github.com/vimstrap/vimstrap/pkg/platform"
	"github.com/vimstrap/vimstrap/pkg/registry"
	"github.com/vimstrap/vimstrap/pkg/vimrc"
)

// Step names, in execution order
const (
	StepDetect      = "detect"
	StepBackup      = "backup"
	StepWriteConfig = "write-config"
	StepPackages    = "install-packages"
	StepFetchPlug   = "fetch-plug"
	StepPlugInstall = "plug-install"
	StepExtensions  = "install-extensions"
)

// Status classifies the outcome of one step
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// StepResult records the outcome of one step of the sequence
type StepResult struct {
	Name   string
	Status Status
	Err    error
}

// Report aggregates the outcome of a whole run
type Report struct {
	Platform *platform.Platform
	Steps    []StepResult
	Backups  []backup.Record
}

// Failed reports whether any step failed
func (r *Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Runner executes the bootstrap sequence:
// detect, backup, write config, install packages, fetch the plugin manager,
// then invoke the editor twice in batch mode.
type Runner struct {
	Config   *core.Config
	Provider platform.Provider  // OS signals, nil means the real OS
	Subproc  pkgmgr.Runner      // Subprocess runner, nil means os/exec
	Fetcher  *fetch.Client      // Bootstrap downloader, nil means default client
	Registry *registry.Registry // Package name aliases, nil means built-ins
	Logger   zerolog.Logger
}

// ExtensionsCommand is the second batch invocation the editor receives.
// vim-plug keeps extensions current through the same mechanism it installs
// them with.
const ExtensionsCommand = "PlugUpdate"

// Run executes the full sequence and returns a report of every step. The
// returned error is non-nil only when the run was aborted; best-effort
// failures are carried in the report.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	cfg := r.Config
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	reg := r.Registry
	if reg == nil {
		reg = registry.New()
	}
	fetcher := r.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewClientWithTimeout(cfg.Timeout.Std())
	}

	report := &Report{}

	// Detect. Never fails; Unknown platforms only degrade later steps.
	report.Platform = platform.Detect(r.Provider)
	r.Logger.Info().Stringer("platform", report.Platform).Msg("detected platform")
	report.Steps = append(report.Steps, StepResult{Name: StepDetect, Status: StatusOK})

	// Backup both paths the run is about to overwrite. A failed backup
	// aborts: overwriting without one would destroy user data.
	for _, path := range []string{cfg.VimrcPath, cfg.PlugDir} {
		rec, err := backup.IfExists(path)
		if err != nil {
			err = stepError(ErrFileBackupFailed, "backup", path, err)
			report.Steps = append(report.Steps, StepResult{Name: StepBackup, Status: StatusFailed, Err: err})
			return report, err
		}
		if rec != nil {
			r.Logger.Info().Str("from", rec.Original).Str("to", rec.Backup).Msg("backed up existing path")
			report.Backups = append(report.Backups, *rec)
		}
	}
	report.Steps = append(report.Steps, StepResult{Name: StepBackup, Status: StatusOK})

	// Write the rendered configuration. Fatal on failure: every later step
	// depends on the config being in place.
	content, err := vimrc.Render(cfg.Render)
	if err == nil {
		err = vimrc.Write(cfg.VimrcPath, content)
	}
	if err != nil {
		err = stepError(ErrConfigWriteFailed, "write config", cfg.VimrcPath, err)
		report.Steps = append(report.Steps, StepResult{Name: StepWriteConfig, Status: StatusFailed, Err: err})
		return report, err
	}
	r.Logger.Info().Str("path", cfg.VimrcPath).Msg("wrote configuration")
	report.Steps = append(report.Steps, StepResult{Name: StepWriteConfig, Status: StatusOK})

	// Install system packages. Unknown platforms skip with a warning; a
	// failed install is recorded but only stops the run in strict mode.
	pkgResult := r.installPackages(ctx, cfg, reg, report.Platform)
	report.Steps = append(report.Steps, pkgResult)
	if pkgResult.Status == StatusFailed && cfg.Strict {
		return report, pkgResult.Err
	}

	// Fetch the plugin manager bootstrap. Without it the editor steps
	// cannot succeed, so a failure here skips them.
	plugPath := filepath.Join(cfg.PlugDir, "autoload", "plug.vim")
	if _, err := fetcher.Download(ctx, cfg.PlugURL, plugPath, cfg.PlugSHA256); err != nil {
		err = stepError(ErrNetworkFetchFailed, "fetch", cfg.PlugURL, err)
		report.Steps = append(report.Steps,
			StepResult{Name: StepFetchPlug, Status: StatusFailed, Err: err},
			StepResult{Name: StepPlugInstall, Status: StatusSkipped},
			StepResult{Name: StepExtensions, Status: StatusSkipped},
		)
		if cfg.Strict {
			return report, err
		}
		return report, nil
	}
	r.Logger.Info().Str("path", plugPath).Msg("fetched plugin manager")
	report.Steps = append(report.Steps, StepResult{Name: StepFetchPlug, Status: StatusOK})

	// Invoke the editor twice in batch mode. Exit codes are inspected;
	// whether a non-zero exit is fatal is the strict policy knob.
	inv := &editor.Invoker{
		Binary:  cfg.Editor,
		Runner:  r.Subproc,
		Timeout: cfg.Timeout.Std(),
		Logger:  r.Logger,
	}

	for _, step := range []struct {
		name    string
		command string
	}{
		{StepPlugInstall, "PlugInstall --sync"},
		{StepExtensions, ExtensionsCommand},
	} {
		if err := inv.Batch(ctx, step.command); err != nil {
			err = stepError(ErrExternalToolFailed, step.name, "", err)
			report.Steps = append(report.Steps, StepResult{Name: step.name, Status: StatusFailed, Err: err})
			if cfg.Strict {
				return report, err
			}
			r.Logger.Warn().Err(err).Str("step", step.name).Msg("editor batch invocation failed, continuing")
			continue
		}
		report.Steps = append(report.Steps, StepResult{Name: step.name, Status: StatusOK})
	}

	return report, nil
}

// installPackages runs the package installer for the detected platform
func (r *Runner) installPackages(ctx context.Context, cfg *core.Config, reg *registry.Registry, plat *platform.Platform) StepResult {
	if plat.Kind == platform.KindUnknown {
		r.Logger.Warn().Str("os", plat.OS).Msg("unknown platform, skipping package installation")
		return StepResult{Name: StepPackages, Status: StatusSkipped}
	}

	installer, err := pkgmgr.For(plat.Kind, &pkgmgr.Config{
		Runner: r.Subproc,
		Sudo:   cfg.Sudo,
		Update: cfg.AptUpdate,
		Logger: r.Logger,
	})
	if err != nil {
		err = stepError(ErrPlatformUnsupported, "install packages", "", err)
		return StepResult{Name: StepPackages, Status: StatusFailed, Err: err}
	}

	if timeout := cfg.Timeout.Std(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	packages := reg.ResolveAll(cfg.Packages, installer.Name())
	if err := installer.Install(ctx, packages); err != nil {
		err = stepError(ErrPackageInstallFailed, "install packages", "", err)
		r.Logger.Warn().Err(err).Msg("package installation failed")
		return StepResult{Name: StepPackages, Status: StatusFailed, Err: err}
	}

	return StepResult{Name: StepPackages, Status: StatusOK}
}
