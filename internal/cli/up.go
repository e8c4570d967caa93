// internal/cli/up.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vimstrap/vimstrap/pkg/bootstrap"
	"github.com/vimstrap/vimstrap/pkg/core"
	"github.com/vimstrap/vimstrap/pkg/logging"
	"github.com/vimstrap/vimstrap/pkg/registry"
)

var (
	upStrict       bool
	upSkipPackages bool
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Bootstrap the editor environment",
	Long: `Run the full bootstrap sequence: detect the platform, back up the
existing configuration, write the generated vimrc, install system packages,
fetch the plugin manager, and install plugins in batch mode.

Examples:
  vimstrap up
  vimstrap up --strict
  vimstrap up --skip-packages -v`,
	RunE: runUp,
}

func init() {
	upCmd.Flags().BoolVar(&upStrict, "strict", false, "treat every step failure as fatal")
	upCmd.Flags().BoolVar(&upSkipPackages, "skip-packages", false, "skip system package installation")
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if upStrict {
		config.Strict = true
	}
	if upSkipPackages {
		config.Packages = nil
	}

	reg, err := registry.Load(core.RegistryPath())
	if err != nil {
		return fmt.Errorf("loading package registry: %w", err)
	}

	runner := &bootstrap.Runner{
		Config:   config,
		Registry: reg,
		Logger:   logging.GetLogger("bootstrap"),
	}

	report, err := runner.Run(ctx)
	printReport(report)
	if err != nil {
		return err
	}

	if report.Failed() {
		// Partial failure: the report says which steps; exit non-zero
		// without repeating the errors cobra would print
		os.Exit(1)
	}

	return nil
}

func printReport(report *bootstrap.Report) {
	if report == nil {
		return
	}

	for _, rec := range report.Backups {
		fmt.Printf("backed up %s -> %s\n", rec.Original, rec.Backup)
	}

	for _, step := range report.Steps {
		switch step.Status {
		case bootstrap.StatusOK:
			fmt.Printf("✓ %s\n", step.Name)
		case bootstrap.StatusSkipped:
			fmt.Printf("- %s (skipped)\n", step.Name)
		case bootstrap.StatusFailed:
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", step.Name, step.Err)
		}
	}
}
