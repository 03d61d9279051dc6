// Package testutil builds throwaway Eclipse project fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ProjectOpts describes the files to create inside a fixture project dir.
type ProjectOpts struct {
	// Marker creates an empty .project file.
	Marker bool
	// SrcDir creates an empty src/ subdirectory.
	SrcDir bool
	// SymbolicName, when set, writes META-INF/MANIFEST.MF with this
	// Bundle-SymbolicName and any RequireBundle entries.
	SymbolicName  string
	RequireBundle []string
	// Classpath, when set, is written verbatim as the .classpath file.
	Classpath string
}

// WriteProject creates a project directory under root with the requested
// fixture files and returns its path.
func WriteProject(t *testing.T, root, name string, opts ProjectOpts) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if opts.Marker {
		writeFile(t, filepath.Join(dir, ".project"), "")
	}
	if opts.SrcDir {
		if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if opts.SymbolicName != "" {
		writeFile(t, filepath.Join(dir, "META-INF", "MANIFEST.MF"),
			Manifest(opts.SymbolicName, opts.RequireBundle...))
	}
	if opts.Classpath != "" {
		writeFile(t, filepath.Join(dir, ".classpath"), opts.Classpath)
	}
	return dir
}

// Manifest renders a minimal MANIFEST.MF with the given symbolic name and
// required bundles, folding the Require-Bundle header across lines the way
// Eclipse writes it.
func Manifest(symbolicName string, requireBundle ...string) string {
	var b strings.Builder
	b.WriteString("Manifest-Version: 1.0\n")
	b.WriteString("Bundle-ManifestVersion: 2\n")
	b.WriteString("Bundle-SymbolicName: " + symbolicName + ";singleton:=true\n")
	b.WriteString("Bundle-Version: 1.0.0.qualifier\n")
	if len(requireBundle) > 0 {
		b.WriteString("Require-Bundle: " + requireBundle[0])
		for _, r := range requireBundle[1:] {
			b.WriteString(",\n " + r)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Classpath renders a .classpath document from raw classpathentry lines.
func Classpath(entries ...string) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<classpath>\n")
	for _, e := range entries {
		b.WriteString("    " + e + "\n")
	}
	b.WriteString("</classpath>\n")
	return b.String()
}

// LibEntry renders a kind="lib" classpathentry for the given jar path.
func LibEntry(jarPath string) string {
	return `<classpathentry kind="lib" path="` + jarPath + `"/>`
}

// SrcEntry renders a kind="src" project reference entry.
func SrcEntry(path string) string {
	return `<classpathentry combineaccessrules="false" kind="src" path="` + path + `"/>`
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
