package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rolfmadsen/eclipsews/internal/catalog"
	"github.com/rolfmadsen/eclipsews/internal/git"
	"github.com/rolfmadsen/eclipsews/internal/osgi"
	"github.com/rolfmadsen/eclipsews/internal/ui"
	"github.com/rolfmadsen/eclipsews/internal/workspace"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List discovered projects and bundles",
		RunE:  runScan,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("save", false, "Write the bundle catalog to catalog.yaml")
	return cmd
}

type projectInfo struct {
	Dir       string `json:"dir"`
	Root      string `json:"root"`
	Bundle    string `json:"bundle,omitempty"`
	Classpath bool   `json:"classpath"`
	Branch    string `json:"branch,omitempty"`
	Head      string `json:"head,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
}

func runScan(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")
	save, _ := cmd.Flags().GetBool("save")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}

	var infos []projectInfo
	for _, r := range ctx.RootPaths() {
		rootState := collectRootState(r)
		for _, dir := range workspace.ProjectDirs(r) {
			infos = append(infos, collectProject(r, dir, rootState))
		}
	}

	out := cmd.OutOrStdout()

	if save {
		cf := workspace.SnapshotCatalog(ctx.Config.Name, version,
			time.Now().Format(time.RFC3339), ctx.CatalogOrder())
		if err := catalog.Save(ctx.CatalogPath, cf); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Catalog written: %s (%d bundles)\n", ctx.CatalogPath, len(cf.Bundles))
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tbl := ui.NewTable(out, "PROJECT", "ROOT", "BUNDLE", "CLASSPATH", "BRANCH", "HEAD", "DIRTY")
	for _, p := range infos {
		tbl.Row(p.Dir, p.Root, p.Bundle, ui.Mark(p.Classpath), p.Branch, p.Head, p.Dirty)
	}
	return tbl.Flush()
}

type rootState struct {
	branch string
	head   string
	dirty  bool
}

// collectRootState reads git state once per root; every project under the
// root shares the same checkout.
func collectRootState(root string) rootState {
	var s rootState
	if !git.IsInstalled() || !git.IsCheckout(root) {
		return s
	}
	if branch, err := git.CurrentBranch(root); err == nil {
		if branch == "" {
			s.branch = "(detached)"
		} else {
			s.branch = branch
		}
	}
	if head, err := git.HeadCommit(root); err == nil {
		s.head = head
	}
	if dirty, err := git.IsDirty(root); err == nil {
		s.dirty = dirty
	}
	return s
}

func collectProject(root, dir string, rs rootState) projectInfo {
	projectDir := filepath.Join(root, dir)
	info := projectInfo{
		Dir:       dir,
		Root:      root,
		Classpath: fileExists(filepath.Join(projectDir, ".classpath")),
		Branch:    rs.branch,
		Head:      rs.head,
		Dirty:     rs.dirty,
	}
	if m, err := osgi.ParseFile(filepath.Join(projectDir, workspace.ManifestRelPath)); err == nil {
		info.Bundle = m.SymbolicName
	}
	return info
}
