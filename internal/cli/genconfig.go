// internal/cli/genconfig.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vimstrap/vimstrap/pkg/core"
)

var genconfigWrite bool

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Print the default configuration",
	Long: `Print the default configuration as YAML. With --write, save it to
the standard config location instead (refusing to overwrite an existing
file).`,
	RunE: runGenconfig,
}

func init() {
	genconfigCmd.Flags().BoolVar(&genconfigWrite, "write", false, "write to the config file instead of stdout")
}

func runGenconfig(cmd *cobra.Command, args []string) error {
	cfg := core.DefaultConfig()

	if !genconfigWrite {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	}

	path := cfgFile
	if path == "" {
		path = core.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := core.SaveConfig(cfg, path); err != nil {
		return err
	}

	fmt.Printf("Wrote default configuration to %s\n", path)
	return nil
}
