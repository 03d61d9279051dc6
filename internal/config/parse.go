package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate checks the workspace configuration for errors.
func Validate(ws *Workspace) error { return validate(ws) }

// Save validates and writes a workspace configuration to disk.
func Save(path string, ws *Workspace) error {
	if err := validate(ws); err != nil {
		return err
	}
	data, err := yaml.Marshal(ws)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Load reads and validates a workspace.yaml file.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the workspace config path
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates workspace.yaml content.
func Parse(data []byte) (*Workspace, error) {
	var ws Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

func validate(ws *Workspace) error {
	if ws.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", ws.Version)
	}
	if ws.Name == "" {
		return fmt.Errorf("config: name is required")
	}
	if len(ws.Roots) == 0 {
		return fmt.Errorf("config: at least one root is required")
	}

	seen := make(map[string]bool, len(ws.Roots))
	primaries := 0
	for i, r := range ws.Roots {
		if r.Path == "" {
			return fmt.Errorf("config: roots[%d].path is required", i)
		}
		if seen[r.Path] {
			return fmt.Errorf("config: duplicate root path %q", r.Path)
		}
		seen[r.Path] = true
		if r.Primary {
			primaries++
		}
	}
	if primaries > 1 {
		return fmt.Errorf("config: at most one root may be primary (found %d)", primaries)
	}
	return nil
}

// ExpandPath expands a leading ~ to the current user's home directory.
// Roots are listed as absolute or ~-relative paths in workspace.yaml.
func ExpandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
