// pkg/registry/registry.go
package registry

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Entry maps one canonical package name to backend-specific names.
// e.g. Backends["apt"] = "universal-ctags"
type Entry struct {
	Backends map[string]string `toml:"backends"`
}

// Registry resolves canonical package names to the names a given backend
// understands. Names without an entry resolve to themselves.
type Registry struct {
	entries map[string]Entry
}

// builtin covers the packages the default bootstrap list needs. An override
// file extends or replaces these.
var builtin = map[string]Entry{
	"ctags": {Backends: map[string]string{
		"apt":  "universal-ctags",
		"dnf":  "ctags",
		"brew": "universal-ctags",
	}},
	"fd": {Backends: map[string]string{
		"apt":  "fd-find",
		"dnf":  "fd-find",
		"brew": "fd",
	}},
	"vim": {Backends: map[string]string{
		"apt":  "vim",
		"dnf":  "vim-enhanced",
		"brew": "vim",
	}},
}

// New creates a Registry with the built-in alias table
func New() *Registry {
	entries := make(map[string]Entry, len(builtin))
	for name, entry := range builtin {
		entries[name] = entry
	}
	return &Registry{entries: entries}
}

// Load creates a Registry with the built-in table merged with an override
// file. A missing file is not an error; a malformed one is.
func Load(path string) (*Registry, error) {
	r := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	var doc struct {
		Packages map[string]Entry `toml:"packages"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", path, err)
	}

	for name, entry := range doc.Packages {
		r.entries[name] = entry
	}

	return r, nil
}

// Resolve takes a canonical package name and a backend, and returns the
// backend-specific package name. Unlisted names pass through unchanged.
func (r *Registry) Resolve(name, backend string) string {
	entry, ok := r.entries[name]
	if !ok {
		return name
	}
	resolved, ok := entry.Backends[backend]
	if !ok {
		return name
	}
	return resolved
}

// ResolveAll resolves a whole package list for one backend, preserving order
func (r *Registry) ResolveAll(names []string, backend string) []string {
	resolved := make([]string, 0, len(names))
	for _, name := range names {
		resolved = append(resolved, r.Resolve(name, backend))
	}
	return resolved
}
