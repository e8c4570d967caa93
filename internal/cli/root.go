// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vimstrap/vimstrap/pkg/core"
	"github.com/vimstrap/vimstrap/pkg/logging"
)

var (
	cfgFile   string
	verbosity int
	config    *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vimstrap",
	Short: "Vim environment bootstrapper",
	Long: `vimstrap - Vim environment bootstrapper

Converges a local Vim setup in one run: installs the system packages the
configuration needs, backs up any existing configuration, writes a generated
vimrc, fetches the plugin manager, and installs the declared plugins.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/vimstrap/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	// Add commands
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(prefetchCmd)
	rootCmd.AddCommand(genconfigCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	logging.Setup(verbosity)

	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}
}
