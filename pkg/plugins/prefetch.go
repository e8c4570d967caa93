// pkg/plugins/prefetch.go
package plugins

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
)

// GitHubBase is where bare "owner/repo" plugin specs resolve to
const GitHubBase = "https://github.com"

// Result describes the outcome of prefetching one plugin
type Result struct {
	Name    string // Directory name under plugged/
	URL     string // Clone URL
	Skipped bool   // Already present, left untouched
	Err     error  // Clone failure, nil on success
}

// RepoURL resolves a vim-plug spec to a clone URL. Bare "owner/repo" specs
// resolve against GitHub, anything with a scheme passes through.
func RepoURL(spec string) string {
	if strings.Contains(spec, "://") || strings.HasPrefix(spec, "git@") {
		return spec
	}
	return GitHubBase + "/" + spec + ".git"
}

// DirName returns the directory a spec is cloned into, matching where the
// plugin manager itself would put it
func DirName(spec string) string {
	name := spec[strings.LastIndex(spec, "/")+1:]
	return strings.TrimSuffix(name, ".git")
}

// Prefetch shallow-clones every declared plugin into plugDir/plugged so the
// first editor launch works without network access. Plugins that already
// have a directory are skipped, never updated; the editor remains the plugin
// installer of record.
func Prefetch(ctx context.Context, plugDir string, specs []string, logger zerolog.Logger) []Result {
	pluggedDir := filepath.Join(plugDir, "plugged")

	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		res := Result{Name: DirName(spec), URL: RepoURL(spec)}
		target := filepath.Join(pluggedDir, res.Name)

		if _, err := os.Stat(target); err == nil {
			logger.Debug().Str("plugin", res.Name).Msg("already present, skipping")
			res.Skipped = true
			results = append(results, res)
			continue
		}

		logger.Info().Str("plugin", res.Name).Str("url", res.URL).Msg("cloning plugin")

		_, err := git.PlainCloneContext(ctx, target, false, &git.CloneOptions{
			URL:          res.URL,
			SingleBranch: true,
			Depth:        1,
		})
		if err != nil {
			// Leave no partial clone behind
			os.RemoveAll(target)
			res.Err = fmt.Errorf("cloning %s: %w", res.URL, err)
		}

		results = append(results, res)
	}

	return results
}
