package main

import (
	"fmt"

	"github.com/rolfmadsen/eclipsews/internal/classpath"
	"github.com/rolfmadsen/eclipsews/internal/ui"
	"github.com/rolfmadsen/eclipsews/internal/workspace"
	"github.com/spf13/cobra"
)

func newCleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove conflicting lib entries from .classpath files",
		RunE:  runCleanup,
	}
	cmd.Flags().Bool("dry-run", false, "Log removals without writing files")
	return cmd
}

func runCleanup(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	roots := ctx.RootPaths()

	_, _ = fmt.Fprintln(out, "Identifying source projects in workspace...")
	projects := workspace.ProjectNames(roots)
	_, _ = fmt.Fprintf(out, "Found %d source projects.\n", len(projects))

	var files []string
	for _, r := range roots {
		files = append(files, workspace.FindClasspaths(r)...)
	}
	_, _ = fmt.Fprintf(out, "Found %d .classpath files to check.\n", len(files))

	progress := ui.NewProgress(out, len(files))
	for _, f := range files {
		if cleanupFile(f, projects, dryRun, progress) {
			progress.Done(fmt.Sprintf("Cleaned up: %s", f))
		}
	}

	_, _ = fmt.Fprintf(out, "\nFinished! Cleaned up %d files.\n", progress.Completed())
	return nil
}

// cleanupFile applies the removal rules to one .classpath file. Parse and
// write failures are logged and reported as "unchanged" so the run
// continues with the next file.
func cleanupFile(path string, projects []string, dryRun bool, progress *ui.Progress) bool {
	f, err := classpath.Load(path)
	if err != nil {
		progress.Log("Error processing %s: %v", path, err)
		return false
	}

	removals := f.RemoveConflicts(projects)
	for _, r := range removals {
		if r.Project != "" {
			progress.Action("Removing conflict: %s (matches source project %s)", r.FileName, r.Project)
		} else {
			progress.Action("Removing source JAR: %s", r.FileName)
		}
	}
	if len(removals) == 0 {
		return false
	}
	if dryRun {
		return true
	}

	if err := f.Save(); err != nil {
		progress.Log("Error processing %s: %v", path, err)
		return false
	}
	return true
}
