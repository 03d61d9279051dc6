package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rolfmadsen/eclipsews/internal/catalog"
	"github.com/rolfmadsen/eclipsews/internal/osgi"
)

// ManifestRelPath is the location of the OSGi manifest within a project.
const ManifestRelPath = "META-INF/MANIFEST.MF"

// ProjectNames scans the given roots and returns the names of directories
// that look like Eclipse projects: immediate subdirectories containing a
// .project marker file or a src subdirectory. Non-existent roots are
// skipped; an empty result is not an error. Names are deduplicated and
// sorted for stable output.
func ProjectNames(roots []string) []string {
	seen := make(map[string]bool)
	for _, root := range roots {
		for _, dir := range subdirs(root) {
			if isProject(filepath.Join(root, dir)) {
				seen[dir] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildCatalog scans roots in the given order and maps bundle symbolic
// names to project directory names. A directory with a readable manifest
// contributes its symbolic name; a directory with only a .project marker
// contributes its own name as a fallback key. Later roots overwrite earlier
// entries, so callers pass the primary root last.
func BuildCatalog(roots []string) map[string]string {
	bundles := make(map[string]string)
	for _, root := range roots {
		for _, dir := range subdirs(root) {
			projectDir := filepath.Join(root, dir)
			m, err := osgi.ParseFile(filepath.Join(projectDir, ManifestRelPath))
			if err == nil && m.SymbolicName != "" {
				bundles[m.SymbolicName] = dir
				continue
			}
			if _, err := os.Stat(filepath.Join(projectDir, ".project")); err == nil {
				bundles[dir] = dir
			}
		}
	}
	return bundles
}

// SnapshotCatalog builds the bundle catalog and wraps it in a catalog.File
// for serialization.
func SnapshotCatalog(name, toolVersion, generatedAt string, roots []string) *catalog.File {
	return &catalog.File{
		Version:     1,
		Name:        name,
		GeneratedAt: generatedAt,
		ToolVersion: toolVersion,
		Bundles:     BuildCatalog(roots),
	}
}

// FindClasspaths walks a root recursively and returns every .classpath file
// found, in walk order. A missing root yields nil.
func FindClasspaths(root string) []string {
	var paths []string
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if !d.IsDir() && d.Name() == ".classpath" {
			paths = append(paths, p)
		}
		return nil
	})
	return paths
}

// ProjectDirs returns the immediate subdirectories of a root, sorted by
// name. The restore pipeline visits each and acts on those that carry both
// a manifest and a classpath file.
func ProjectDirs(root string) []string {
	return subdirs(root)
}

func subdirs(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs
}

func isProject(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, ".project")); err == nil {
		return true
	}
	info, err := os.Stat(filepath.Join(dir, "src"))
	return err == nil && info.IsDir()
}
