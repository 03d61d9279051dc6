package config

// Workspace represents the top-level workspace.yaml configuration.
type Workspace struct {
	Version int    `yaml:"version"`
	Name    string `yaml:"name"`
	Roots   []Root `yaml:"roots"`
}

// Root is one workspace root directory holding sibling project directories.
type Root struct {
	Path string `yaml:"path"`
	// Primary marks the root whose bundle entries win when two roots
	// supply the same bundle symbolic name.
	Primary bool `yaml:"primary,omitempty"`
}

// RootPaths returns the root paths in configuration order.
func (w *Workspace) RootPaths() []string {
	paths := make([]string, len(w.Roots))
	for i, r := range w.Roots {
		paths[i] = r.Path
	}
	return paths
}

// CatalogOrder returns the root paths ordered for bundle catalog building:
// configuration order, with the primary root moved last so its entries
// overwrite duplicates supplied by other roots.
func (w *Workspace) CatalogOrder() []string {
	paths := make([]string, 0, len(w.Roots))
	var primary []string
	for _, r := range w.Roots {
		if r.Primary {
			primary = append(primary, r.Path)
			continue
		}
		paths = append(paths, r.Path)
	}
	return append(paths, primary...)
}
