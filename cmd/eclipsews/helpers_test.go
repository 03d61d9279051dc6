package main

import (
	"os"
	"path/filepath"
	"testing"
)

// setupWorkspace builds a config dir pointing at two freshly created roots
// and returns (configDir, primaryRoot, pluginRoot).
func setupWorkspace(t *testing.T) (string, string, string) {
	t.Helper()
	configDir := t.TempDir()
	primaryRoot := t.TempDir()
	pluginRoot := t.TempDir()

	writeWorkspaceConfig(t, configDir, primaryRoot, pluginRoot)
	return configDir, primaryRoot, pluginRoot
}

func writeWorkspaceConfig(t *testing.T, configDir string, roots ...string) {
	t.Helper()
	content := "version: 1\nname: test-workspace\nroots:\n"
	for i, r := range roots {
		content += "  - path: " + r + "\n"
		if i == 0 {
			content += "    primary: true\n"
		}
	}
	path := filepath.Join(configDir, "workspace.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
