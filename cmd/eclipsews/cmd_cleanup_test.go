package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rolfmadsen/eclipsews/internal/testutil"
)

func TestRunCleanup(t *testing.T) {
	configDir, primaryRoot, pluginRoot := setupWorkspace(t)

	// Source projects named archi and elk-layout.
	testutil.WriteProject(t, primaryRoot, "archi", testutil.ProjectOpts{Marker: true})
	testutil.WriteProject(t, pluginRoot, "elk-layout", testutil.ProjectOpts{SrcDir: true})

	// A consumer project carrying conflicting and innocent jars.
	consumer := testutil.WriteProject(t, pluginRoot, "consumer", testutil.ProjectOpts{
		Marker: true,
		Classpath: testutil.Classpath(
			testutil.LibEntry("lib/archi-4.9.jar"),
			testutil.LibEntry("lib/commons-io-2.8.jar"),
			testutil.LibEntry("lib/archi.source_1.0.jar"),
		),
	})

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--root", configDir, "cleanup"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Removing conflict: archi-4.9.jar") {
		t.Errorf("missing conflict removal log:\n%s", out)
	}
	if !strings.Contains(out, "Removing source JAR: archi.source_1.0.jar") {
		t.Errorf("missing source jar removal log:\n%s", out)
	}
	if !strings.Contains(out, "Cleaned up 1 files") {
		t.Errorf("missing summary:\n%s", out)
	}

	content := readFile(t, filepath.Join(consumer, ".classpath"))
	if strings.Contains(content, "archi-4.9.jar") || strings.Contains(content, "archi.source_1.0.jar") {
		t.Errorf("flagged entries survived:\n%s", content)
	}
	if !strings.Contains(content, "commons-io-2.8.jar") {
		t.Errorf("innocent entry removed:\n%s", content)
	}
}

func TestRunCleanup_noMatchesLeavesFileUntouched(t *testing.T) {
	configDir, primaryRoot, _ := setupWorkspace(t)

	cp := testutil.Classpath(testutil.LibEntry("lib/commons-io-2.8.jar"))
	dir := testutil.WriteProject(t, primaryRoot, "clean", testutil.ProjectOpts{
		Marker:    true,
		Classpath: cp,
	})

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--root", configDir, "cleanup"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	if got := readFile(t, filepath.Join(dir, ".classpath")); got != cp {
		t.Errorf("file rewritten despite no matches:\n%s", got)
	}
	if !strings.Contains(buf.String(), "Cleaned up 0 files") {
		t.Errorf("summary should report zero files:\n%s", buf.String())
	}
}

func TestRunCleanup_malformedFileSkipped(t *testing.T) {
	configDir, primaryRoot, _ := setupWorkspace(t)

	testutil.WriteProject(t, primaryRoot, "archi", testutil.ProjectOpts{Marker: true})
	testutil.WriteProject(t, primaryRoot, "broken", testutil.ProjectOpts{
		Marker:    true,
		Classpath: "<classpath><classpathentry kind=\"lib\"", // truncated
	})
	good := testutil.WriteProject(t, primaryRoot, "good", testutil.ProjectOpts{
		Marker:    true,
		Classpath: testutil.Classpath(testutil.LibEntry("lib/archi-4.9.jar")),
	})

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--root", configDir, "cleanup"})
	if err := root.Execute(); err != nil {
		t.Fatalf("run should not abort on malformed XML: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Error processing") {
		t.Errorf("missing error log for malformed file:\n%s", out)
	}
	// The good file is still processed.
	if strings.Contains(readFile(t, filepath.Join(good, ".classpath")), "archi-4.9.jar") {
		t.Error("good file was not cleaned after the malformed one")
	}
}

func TestRunCleanup_fileWithoutDeclaration(t *testing.T) {
	configDir, primaryRoot, _ := setupWorkspace(t)

	testutil.WriteProject(t, primaryRoot, "archi", testutil.ProjectOpts{Marker: true})
	// Hand-edited files sometimes lack the XML declaration Eclipse writes.
	dir := testutil.WriteProject(t, primaryRoot, "consumer", testutil.ProjectOpts{
		Marker: true,
		Classpath: "<classpath>\n" +
			"    " + testutil.LibEntry("lib/archi-4.9.jar") + "\n" +
			"    " + testutil.LibEntry("lib/commons-io-2.8.jar") + "\n" +
			"</classpath>\n",
	})

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--root", configDir, "cleanup"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Cleaned up 1 files") {
		t.Errorf("file without declaration was not processed:\n%s", buf.String())
	}

	content := readFile(t, filepath.Join(dir, ".classpath"))
	if n := strings.Count(content, "<?xml"); n != 1 {
		t.Errorf("declaration count = %d, want 1:\n%s", n, content)
	}
	if !strings.HasPrefix(content, "<?xml") {
		t.Errorf("declaration not at start of file:\n%s", content)
	}
	if strings.Contains(content, "archi-4.9.jar") || !strings.Contains(content, "commons-io-2.8.jar") {
		t.Errorf("rules not applied:\n%s", content)
	}
}

func TestRunCleanup_dryRun(t *testing.T) {
	configDir, primaryRoot, _ := setupWorkspace(t)

	testutil.WriteProject(t, primaryRoot, "archi", testutil.ProjectOpts{Marker: true})
	cp := testutil.Classpath(testutil.LibEntry("lib/archi-4.9.jar"))
	dir := testutil.WriteProject(t, primaryRoot, "consumer", testutil.ProjectOpts{
		Marker:    true,
		Classpath: cp,
	})

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--root", configDir, "cleanup", "--dry-run"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Removing conflict: archi-4.9.jar") {
		t.Errorf("dry run should log removals:\n%s", buf.String())
	}
	if got := readFile(t, filepath.Join(dir, ".classpath")); got != cp {
		t.Errorf("dry run must not rewrite files:\n%s", got)
	}
}
