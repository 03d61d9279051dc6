package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/rolfmadsen/eclipsews/internal/config"
)

// Context holds the resolved paths and loaded config for a workspace.
type Context struct {
	Root        string
	ConfigPath  string
	CatalogPath string
	Config      *config.Workspace
}

// Load resolves workspace paths and loads the configuration.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	configPath := filepath.Join(root, "workspace.yaml")
	ws, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return &Context{
		Root:        root,
		ConfigPath:  configPath,
		CatalogPath: filepath.Join(root, "catalog.yaml"),
		Config:      ws,
	}, nil
}

// RootPaths returns the configured root paths, ~-expanded, in config order.
func (c *Context) RootPaths() []string {
	return expandAll(c.Config.RootPaths())
}

// CatalogOrder returns the ~-expanded root paths with the primary root last.
func (c *Context) CatalogOrder() []string {
	return expandAll(c.Config.CatalogOrder())
}

func expandAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = config.ExpandPath(p)
	}
	return out
}
