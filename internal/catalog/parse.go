package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog.yaml file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a workspace catalog path
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// Parse parses catalog.yaml content.
func Parse(data []byte) (*File, error) {
	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	return &cf, nil
}

// Save writes the catalog file to disk.
func Save(path string, cf *File) error {
	data, err := yaml.Marshal(cf)
	if err != nil {
		return fmt.Errorf("marshaling catalog file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // catalog file needs to be readable
		return fmt.Errorf("writing catalog file: %w", err)
	}
	return nil
}
