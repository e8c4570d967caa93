// internal/cli/prefetch.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vimstrap/vimstrap/pkg/logging"
	"github.com/vimstrap/vimstrap/pkg/plugins"
)

var prefetchCmd = &cobra.Command{
	Use:   "prefetch",
	Short: "Clone declared plugins ahead of the first editor launch",
	Long: `Shallow-clone every plugin from the configuration into the plugin
directory so the first editor launch works without network access. Plugins
that already exist are left untouched; the editor's plugin manager stays in
charge of updates.`,
	RunE: runPrefetch,
}

func runPrefetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	results := plugins.Prefetch(ctx, config.PlugDir, config.Render.Plugins, logging.GetLogger("prefetch"))

	failed := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Name, res.Err)
		case res.Skipped:
			fmt.Printf("- %s (already present)\n", res.Name)
		default:
			fmt.Printf("✓ %s\n", res.Name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d plugins failed to prefetch", failed, len(results))
	}

	return nil
}
