package workspace

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rolfmadsen/eclipsews/internal/testutil"
)

func TestProjectNames(t *testing.T) {
	root := t.TempDir()
	testutil.WriteProject(t, root, "archi", testutil.ProjectOpts{Marker: true})
	testutil.WriteProject(t, root, "elk-layout", testutil.ProjectOpts{SrcDir: true})
	testutil.WriteProject(t, root, "not-a-project", testutil.ProjectOpts{})

	got := ProjectNames([]string{root, filepath.Join(root, "missing-root")})
	want := []string{"archi", "elk-layout"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("project names = %v, want %v", got, want)
	}
}

func TestProjectNames_missingRootsSkipped(t *testing.T) {
	got := ProjectNames([]string{"/nonexistent/root"})
	if len(got) != 0 {
		t.Errorf("expected no projects, got %v", got)
	}
}

func TestBuildCatalog(t *testing.T) {
	root := t.TempDir()
	testutil.WriteProject(t, root, "editor", testutil.ProjectOpts{
		SymbolicName: "com.archimatetool.editor",
	})
	testutil.WriteProject(t, root, "plain", testutil.ProjectOpts{Marker: true})

	got := BuildCatalog([]string{root})
	want := map[string]string{
		"com.archimatetool.editor": "editor",
		"plain":                    "plain",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("catalog = %v, want %v", got, want)
	}
}

func TestBuildCatalog_laterRootWins(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	testutil.WriteProject(t, rootA, "editor-fork", testutil.ProjectOpts{
		SymbolicName: "com.archimatetool.editor",
	})
	testutil.WriteProject(t, rootB, "editor", testutil.ProjectOpts{
		SymbolicName: "com.archimatetool.editor",
	})

	got := BuildCatalog([]string{rootA, rootB})
	if got["com.archimatetool.editor"] != "editor" {
		t.Errorf("catalog = %v, want later root's entry to win", got)
	}
}

func TestFindClasspaths(t *testing.T) {
	root := t.TempDir()
	testutil.WriteProject(t, root, "a", testutil.ProjectOpts{
		Classpath: testutil.Classpath(testutil.LibEntry("lib/x.jar")),
	})
	testutil.WriteProject(t, filepath.Join(root, "nested"), "b", testutil.ProjectOpts{
		Classpath: testutil.Classpath(),
	})

	got := FindClasspaths(root)
	if len(got) != 2 {
		t.Errorf("found %d classpath files, want 2: %v", len(got), got)
	}
}

func TestFindClasspaths_missingRoot(t *testing.T) {
	if got := FindClasspaths("/nonexistent/root"); len(got) != 0 {
		t.Errorf("expected none, got %v", got)
	}
}

func TestSnapshotCatalog(t *testing.T) {
	root := t.TempDir()
	testutil.WriteProject(t, root, "editor", testutil.ProjectOpts{
		SymbolicName: "com.archimatetool.editor",
	})

	cf := SnapshotCatalog("ws", "dev", "2026-08-30T12:00:00Z", []string{root})
	if cf.Version != 1 || cf.Name != "ws" {
		t.Errorf("snapshot header = %+v", cf)
	}
	if cf.Bundles["com.archimatetool.editor"] != "editor" {
		t.Errorf("snapshot bundles = %v", cf.Bundles)
	}
}
