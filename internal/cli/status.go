// internal/cli/status.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vimstrap/vimstrap/pkg/platform"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the detected platform and managed paths",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	plat := platform.Detect(nil)

	fmt.Printf("Platform:  %s\n", plat)
	fmt.Printf("Editor:    %s\n", config.Editor)
	fmt.Println()

	printPath("vimrc", config.VimrcPath)
	printPath("plugin dir", config.PlugDir)
	printPath("plug.vim", filepath.Join(config.PlugDir, "autoload", "plug.vim"))

	if plat.Kind == platform.KindUnknown {
		fmt.Println("\nWarning: unknown platform, 'up' will skip package installation")
	}

	return nil
}

func printPath(label, path string) {
	state := "missing"
	if _, err := os.Stat(path); err == nil {
		state = "present"
	}
	fmt.Printf("%-11s %s (%s)\n", label+":", path, state)
}
