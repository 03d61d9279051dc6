package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rolfmadsen/eclipsews/internal/catalog"
	"github.com/rolfmadsen/eclipsews/internal/classpath"
	"github.com/rolfmadsen/eclipsews/internal/osgi"
	"github.com/rolfmadsen/eclipsews/internal/ui"
	"github.com/rolfmadsen/eclipsews/internal/workspace"
	"github.com/spf13/cobra"
)

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Add missing inter-project src references from Require-Bundle",
		RunE:  runRestore,
	}
	cmd.Flags().Bool("dry-run", false, "Log additions without writing files")
	cmd.Flags().String("catalog", "", "Use a saved catalog.yaml instead of scanning")
	return cmd
}

func runRestore(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	catalogPath, _ := cmd.Flags().GetString("catalog")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	bundles, err := loadBundles(ctx, catalogPath, out)
	if err != nil {
		return err
	}

	roots := ctx.RootPaths()
	progress := ui.NewProgress(out, countProjectDirs(roots))
	for _, r := range roots {
		for _, dir := range workspace.ProjectDirs(r) {
			projectDir := filepath.Join(r, dir)
			if restoreProject(projectDir, bundles, dryRun, progress) {
				progress.Done(fmt.Sprintf("Updated: %s", filepath.Join(projectDir, ".classpath")))
			}
		}
	}

	_, _ = fmt.Fprintf(out, "\nFinished! Updated %d .classpath files with project references.\n",
		progress.Completed())
	return nil
}

func loadBundles(ctx *workspace.Context, catalogPath string, out io.Writer) (map[string]string, error) {
	if catalogPath != "" {
		cf, err := catalog.Load(catalogPath)
		if err != nil {
			return nil, err
		}
		_, _ = fmt.Fprintf(out, "Loaded %d bundles from %s.\n", len(cf.Bundles), catalogPath)
		return cf.Bundles, nil
	}
	_, _ = fmt.Fprintln(out, "Mapping workspace bundles...")
	bundles := workspace.BuildCatalog(ctx.CatalogOrder())
	_, _ = fmt.Fprintf(out, "Mapped %d bundles in workspace.\n", len(bundles))
	return bundles, nil
}

// restoreProject adds missing src references to one project's .classpath.
// Projects without both a manifest and a classpath file are skipped
// silently; per-file failures are logged and leave the file unchanged.
func restoreProject(projectDir string, bundles map[string]string, dryRun bool, progress *ui.Progress) bool {
	manifestPath := filepath.Join(projectDir, workspace.ManifestRelPath)
	classpathPath := filepath.Join(projectDir, ".classpath")
	if !fileExists(manifestPath) || !fileExists(classpathPath) {
		return false
	}

	m, err := osgi.ParseFile(manifestPath)
	if err != nil {
		progress.Log("Error processing %s: %v", manifestPath, err)
		return false
	}

	f, err := classpath.Load(classpathPath)
	if err != nil {
		progress.Log("Error processing %s: %v", classpathPath, err)
		return false
	}

	added := f.AddProjectRefs(m.RequireBundle, bundles)
	for _, ref := range added {
		progress.Action("Adding project ref: %s to %s", ref, filepath.Base(projectDir))
	}
	if len(added) == 0 {
		return false
	}
	if dryRun {
		return true
	}

	if err := f.Save(); err != nil {
		progress.Log("Error processing %s: %v", classpathPath, err)
		return false
	}
	return true
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func countProjectDirs(roots []string) int {
	n := 0
	for _, r := range roots {
		n += len(workspace.ProjectDirs(r))
	}
	return n
}
