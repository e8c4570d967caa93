// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultPlugURL is where the plugin manager bootstrap script lives
const DefaultPlugURL = "https://raw.githubusercontent.com/junegunn/vim-plug/master/plug.vim"

// RenderOptions parameterize the generated vimrc
type RenderOptions struct {
	Theme        string   `yaml:"theme"`
	TabWidth     int      `yaml:"tab_width"`
	FormatOnSave bool     `yaml:"format_on_save"`
	Plugins      []string `yaml:"plugins"` // vim-plug specs, e.g. "junegunn/fzf.vim"
}

// Config holds vimstrap configuration
type Config struct {
	Editor     string        `yaml:"editor"`      // Editor binary to invoke in batch mode
	VimrcPath  string        `yaml:"vimrc_path"`  // Where the generated config is written
	PlugDir    string        `yaml:"plug_dir"`    // Plugin data directory
	Packages   []string      `yaml:"packages"`    // Canonical system package names
	AptUpdate  bool          `yaml:"apt_update"`  // Refresh the apt index before installing
	Sudo       bool          `yaml:"sudo"`        // Elevate package manager invocations
	PlugURL    string        `yaml:"plug_url"`    // Bootstrap script URL
	PlugSHA256 string        `yaml:"plug_sha256"` // Optional checksum for the bootstrap script
	Strict     bool          `yaml:"strict"`      // Treat editor batch failures as fatal
	Timeout    Duration      `yaml:"timeout"`     // Per-subprocess and per-download timeout
	Render     RenderOptions `yaml:"render"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		Editor:    "vim",
		VimrcPath: filepath.Join(home, ".vimrc"),
		PlugDir:   filepath.Join(home, ".vim"),
		Packages:  []string{"vim", "git", "curl", "ctags"},
		AptUpdate: true,
		Sudo:      true,
		PlugURL:   DefaultPlugURL,
		Strict:    false,
		Timeout:   Duration(2 * time.Minute),
		Render: RenderOptions{
			Theme:        "desert",
			TabWidth:     4,
			FormatOnSave: false,
			Plugins: []string{
				"junegunn/fzf.vim",
				"tpope/vim-fugitive",
				"preservim/nerdtree",
			},
		},
	}
}

// DefaultConfigPath returns the standard config file location
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "vimstrap", "config.yaml")
}

// RegistryPath returns the standard package alias override file location
func RegistryPath() string {
	return filepath.Join(xdg.ConfigHome, "vimstrap", "packages.toml")
}

// LoadConfig loads configuration from file. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file, creating parent directories
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
