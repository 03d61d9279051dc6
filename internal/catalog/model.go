package catalog

// File represents catalog.yaml.
type File struct {
	Version     int    `yaml:"version"`
	Name        string `yaml:"name"`
	GeneratedAt string `yaml:"generated_at"`
	ToolVersion string `yaml:"tool_version"`
	// Bundles maps a bundle symbolic name (or, for projects without a
	// manifest, the directory name) to the project directory name used in
	// classpath src references.
	Bundles map[string]string `yaml:"bundles"`
}
