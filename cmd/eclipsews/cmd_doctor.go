package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rolfmadsen/eclipsews/internal/classpath"
	"github.com/rolfmadsen/eclipsews/internal/git"
	"github.com/rolfmadsen/eclipsews/internal/osgi"
	"github.com/rolfmadsen/eclipsews/internal/workspace"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose workspace configuration and metadata files",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	out := cmd.OutOrStdout()
	ok := true

	fmt.Fprint(out, "Checking workspace config... ")
	ctx, err := workspace.Load(root)
	if err != nil {
		fmt.Fprintf(out, "FAILED\n  %v\n", err)
		return fmt.Errorf("doctor checks failed")
	}
	fmt.Fprintf(out, "OK (%s, %d roots)\n", ctx.Config.Name, len(ctx.Config.Roots))

	if !git.IsInstalled() {
		fmt.Fprintln(out, "Note: git not found; root checkout state will not be reported")
	}

	for _, r := range ctx.RootPaths() {
		if !checkRoot(out, r) {
			ok = false
		}
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// checkRoot verifies one workspace root: it exists, its manifests parse,
// and its classpath files parse.
func checkRoot(out io.Writer, root string) bool {
	fmt.Fprintf(out, "Checking root %s... ", root)
	dirs := workspace.ProjectDirs(root)
	if dirs == nil && !fileExists(root) {
		fmt.Fprintln(out, "MISSING")
		return false
	}
	fmt.Fprintf(out, "%d directories\n", len(dirs))

	ok := true
	for _, dir := range dirs {
		projectDir := filepath.Join(root, dir)

		manifestPath := filepath.Join(projectDir, workspace.ManifestRelPath)
		if fileExists(manifestPath) {
			if _, err := osgi.ParseFile(manifestPath); err != nil {
				fmt.Fprintf(out, "  %s: manifest unreadable: %v\n", dir, err)
				ok = false
			}
		}

		classpathPath := filepath.Join(projectDir, ".classpath")
		if fileExists(classpathPath) {
			if _, err := classpath.Load(classpathPath); err != nil {
				fmt.Fprintf(out, "  %s: classpath unreadable: %v\n", dir, err)
				ok = false
			}
		}
	}
	return ok
}
